package transfer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"budgetto/internal/core"
)

// Store is the subset of the entity store the importer needs.
type Store interface {
	ListCategories() ([]core.Category, error)
	AddCategory(cat core.Category) (core.Category, error)
	AddTransaction(tx core.Transaction) (core.Transaction, error)
}

// RowError records why a single row was skipped.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportSummary reports what a batch import did. Skipped rows are never
// fatal to the batch.
type ImportSummary struct {
	Imported          int        `json:"imported"`
	Skipped           int        `json:"skipped"`
	CategoriesCreated int        `json:"categoriesCreated"`
	Errors            []RowError `json:"errors,omitempty"`
}

// Import reads CSV in the export column layout and adds the rows as new
// transactions. The ID column is ignored; the store assigns fresh ids.
// Unknown category names are created on the fly with the row's type and the
// default color, once per batch, and reused by later rows.
func Import(r io.Reader, st Store) (ImportSummary, error) {
	var summary ImportSummary

	existing, err := st.ListCategories()
	if err != nil {
		return summary, fmt.Errorf("list categories: %w", err)
	}
	idByName := make(map[string]string, len(existing))
	for _, c := range existing {
		idByName[strings.ToLower(c.Name)] = c.ID
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated per row; a short row is a row error

	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}
		if line == 1 && isHeaderRow(record) {
			line = 0 // data rows count from 1
			continue
		}

		tx, catName, reason := parseRow(record)
		if reason != "" {
			summary.Skipped++
			summary.Errors = append(summary.Errors, RowError{Line: line, Reason: reason})
			continue
		}

		catID, ok := idByName[strings.ToLower(catName)]
		if !ok {
			created, err := st.AddCategory(core.Category{
				Name:  catName,
				Type:  tx.Type,
				Color: core.DefaultCategoryColor,
			})
			if err != nil {
				summary.Skipped++
				summary.Errors = append(summary.Errors, RowError{Line: line, Reason: fmt.Sprintf("create category %q: %v", catName, err)})
				continue
			}
			catID = created.ID
			idByName[strings.ToLower(catName)] = catID
			summary.CategoriesCreated++
		}
		tx.CategoryID = catID

		if _, err := st.AddTransaction(tx); err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}
		summary.Imported++
	}
	return summary, nil
}

func isHeaderRow(record []string) bool {
	if len(record) < len(csvHeader) {
		return false
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(record[i]), want) {
			return false
		}
	}
	return true
}

// parseRow validates one data row and returns the transaction draft plus
// the category name. A non-empty reason marks the row as skipped.
func parseRow(record []string) (core.Transaction, string, string) {
	if len(record) < 5 {
		return core.Transaction{}, "", fmt.Sprintf("expected at least 5 columns, got %d", len(record))
	}
	date := strings.TrimSpace(record[1])
	typ := core.TransactionType(strings.ToLower(strings.TrimSpace(record[2])))
	catName := strings.TrimSpace(record[3])
	amountStr := strings.TrimSpace(record[4])
	note := ""
	if len(record) > 5 {
		note = strings.TrimSpace(record[5])
	}

	if date == "" {
		return core.Transaction{}, "", "missing date"
	}
	if err := core.ValidateDate(date); err != nil {
		return core.Transaction{}, "", fmt.Sprintf("invalid date %q", date)
	}
	if !typ.Valid() {
		return core.Transaction{}, "", fmt.Sprintf("invalid type %q", record[2])
	}
	if catName == "" {
		return core.Transaction{}, "", "missing category name"
	}
	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		return core.Transaction{}, "", fmt.Sprintf("invalid amount %q", amountStr)
	}

	return core.Transaction{
		Date:   date,
		Amount: core.Money{Cents: cents},
		Type:   typ,
		Note:   note,
	}, catName, ""
}
