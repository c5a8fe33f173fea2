package okapi

import "fmt"

// Fixed BM25 tuning parameters
const (
	Saturation  = 2.2  // k1 + 1
	K1          = 1.2  // term frequency saturation
	B           = 0.75 // length normalization strength
	LengthScale = 100  // length term is a fraction of this
)

// ScoredRecord pairs a record's identifiers with its score
type ScoredRecord struct {
	Score float64 `json:"score"`
	IDA   string  `json:"id_a"`
	IDB   string  `json:"id_b"`
	Line  int     `json:"line"`
}

// Score computes the BM25 score for frequency f, weight w and length term l.
//
//	score = w * (f * 2.2 / (f + 1.2 * (1 - 0.75 + 0.75 * l / 100)))
//
// A zero denominator is reported as ErrArithmetic.
func Score(f, w, l float64) (float64, error) {
	// The conversion rounds the product before the add, so no FMA is used
	denominator := f + float64(K1*(1-B+B*l/LengthScale))
	if denominator == 0 {
		return 0, fmt.Errorf("%w: division by zero (frequency %v, length %v)", ErrArithmetic, f, l)
	}
	return w * (f * Saturation / denominator), nil
}

// ScoreRecord scores a parsed record
func ScoreRecord(r Record) (ScoredRecord, error) {
	s, err := Score(r.Frequency(), r.Weight(), r.Length())
	if err != nil {
		return ScoredRecord{}, &LineError{Line: r.Line, Field: -1, Err: err}
	}
	return ScoredRecord{Score: s, IDA: r.IDA, IDB: r.IDB, Line: r.Line}, nil
}
