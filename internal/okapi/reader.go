// Package okapi scores delimited records with a fixed BM25 formula and
// ranks them by score.
package okapi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ScoreFile reads the file at path, scores every data line and returns
// the results ranked by score. Nothing is returned on the first failure.
func ScoreFile(path string) ([]ScoredRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	return ScoreReader(f)
}

// ScoreReader is ScoreFile over an already open reader.
// Lines have no length limit.
func ScoreReader(r io.Reader) ([]ScoredRecord, error) {
	var scored []ScoredRecord

	br := bufio.NewReader(r)
	for index := 0; ; index++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &LineError{
				Line:  index + 1,
				Field: -1,
				Err:   fmt.Errorf("%w: %w", ErrFileAccess, err),
			}
		}
		eof := err != nil
		if eof && line == "" {
			break
		}

		rec, ok, err := ParseLine(index, line)
		if err != nil {
			return nil, err
		}
		if ok {
			s, err := ScoreRecord(rec)
			if err != nil {
				return nil, err
			}
			scored = append(scored, s)
		}

		if eof {
			break
		}
	}

	return Rank(scored), nil
}
