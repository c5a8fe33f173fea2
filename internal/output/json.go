package output

import (
	"encoding/json"
	"io"

	"github.com/vijay-prabhu/okapi/internal/okapi"
)

// JSONTo writes records as an indented JSON array to the given writer
func JSONTo(w io.Writer, records []okapi.ScoredRecord) error {
	if records == nil {
		records = []okapi.ScoredRecord{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
