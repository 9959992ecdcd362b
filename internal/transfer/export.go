// Package transfer moves transactions in and out of the application as CSV,
// with the column layout ID,Date,Type,CategoryName,Amount,Note.
package transfer

import (
	"encoding/csv"
	"fmt"
	"io"

	"budgetto/internal/core"
)

// UncategorizedName labels exported rows whose category no longer exists.
const UncategorizedName = "Uncategorized"

var csvHeader = []string{"ID", "Date", "Type", "CategoryName", "Amount", "Note"}

// Export writes all transactions as CSV, resolving category ids to names.
// encoding/csv handles RFC-4180 quoting for fields containing commas,
// quotes, or newlines.
func Export(w io.Writer, transactions []core.Transaction, categories []core.Category) error {
	nameByID := make(map[string]string, len(categories))
	for _, c := range categories {
		nameByID[c.ID] = c.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, tx := range transactions {
		name, ok := nameByID[tx.CategoryID]
		if !ok {
			name = UncategorizedName
		}
		row := []string{
			tx.ID,
			tx.Date,
			string(tx.Type),
			name,
			core.FormatCents(tx.Amount.Cents),
			tx.Note,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
