package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/vijay-prabhu/okapi/internal/okapi"
)

// FormatScore renders a score as the shortest decimal that parses back
// to the same float64, without an exponent.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// TextTo writes one "<score>, <idA>, <idB>" line per record.
// The output is built in full and written with a single call.
func TextTo(w io.Writer, records []okapi.ScoredRecord) error {
	if len(records) == 0 {
		return nil
	}

	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatScore(r.Score))
		b.WriteString(", ")
		b.WriteString(r.IDA)
		b.WriteString(", ")
		b.WriteString(r.IDB)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
