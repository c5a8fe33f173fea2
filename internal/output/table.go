package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vijay-prabhu/okapi/internal/okapi"
)

// TableTo writes records as a ranked table to the given writer
func TableTo(w io.Writer, records []okapi.ScoredRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No records found.")
		return err
	}

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			FormatScore(r.Score),
			r.IDA,
			r.IDB,
			fmt.Sprintf("%d", r.Line),
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header("Rank", "Score", "ID A", "ID B", "Line")
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	return table.Render()
}
