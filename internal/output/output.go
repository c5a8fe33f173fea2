// Package output renders ranked records in the supported formats.
package output

import (
	"fmt"
	"io"

	"github.com/vijay-prabhu/okapi/internal/okapi"
)

// Supported output formats
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formats lists every supported output format
var Formats = []string{FormatText, FormatTable, FormatJSON}

// Output writes records to w in the specified format
func Output(w io.Writer, format string, records []okapi.ScoredRecord) error {
	switch format {
	case FormatText, "":
		return TextTo(w, records)
	case FormatTable:
		return TableTo(w, records)
	case FormatJSON:
		return JSONTo(w, records)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
