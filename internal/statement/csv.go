// Package statement reads parsed mobile-money statement exports and hands
// the scorer a raw transaction table. It is deliberately thin: everything
// semantic happens in normalize and score.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/finscore-dev/finscore/internal/common"
	"github.com/finscore-dev/finscore/internal/model"
)

// columnAliases maps each logical field to the header names statements use
// for it, compared case-insensitively.
var columnAliases = map[string][]string{
	"date":        {"date", "transaction date", "completion time"},
	"time":        {"time", "transaction time"},
	"amount":      {"amount", "transaction amount", "paid in/out"},
	"balance":     {"balance", "account balance"},
	"category":    {"transactiontype", "transaction type", "category", "type"},
	"description": {"description", "details", "narrative"},
}

// Parse reads a statement CSV with a header row and returns its rows as raw
// transactions. Only a date column is required; every other column is
// optional and missing ones leave the corresponding fields blank. A
// statement with a header but no rows parses to an empty table.
func Parse(r io.Reader) ([]model.RawTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, common.ErrMissingDateColumn
	}

	cols := mapColumns(records[0])
	if _, ok := cols["date"]; !ok {
		return nil, common.ErrMissingDateColumn
	}

	txns := make([]model.RawTransaction, 0, len(records)-1)
	for _, rec := range records[1:] {
		txns = append(txns, model.RawTransaction{
			Date:        field(rec, cols, "date"),
			Time:        field(rec, cols, "time"),
			Amount:      field(rec, cols, "amount"),
			Balance:     field(rec, cols, "balance"),
			Category:    field(rec, cols, "category"),
			Description: field(rec, cols, "description"),
		})
	}

	return txns, nil
}

// ParseFile opens and parses a statement CSV from disk.
func ParseFile(path string) ([]model.RawTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// mapColumns resolves the header row to logical column indexes. The first
// header matching an alias wins; later duplicates are ignored.
func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)

	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		for logical, aliases := range columnAliases {
			if _, taken := cols[logical]; taken {
				continue
			}
			for _, alias := range aliases {
				if name == alias {
					cols[logical] = i
					break
				}
			}
		}
	}

	return cols
}

// field extracts a logical column from a record, tolerating short rows.
func field(rec []string, cols map[string]int, logical string) string {
	idx, ok := cols[logical]
	if !ok || idx >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[idx])
}
