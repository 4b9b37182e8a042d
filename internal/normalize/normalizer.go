// Package normalize turns raw statement rows into the normalized transaction
// table the scorer consumes: parsed dates and hours, numeric amounts and
// balances, and a resolved category per row.
package normalize

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/finscore-dev/finscore/internal/common"
	"github.com/finscore-dev/finscore/internal/model"
)

// dateLayouts are the accepted statement date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006-01-02T15:04:05Z07:00",
	"02 Jan 2006",
}

// defaultHour is assumed when a row has no time-of-day.
const defaultHour = 12

// Normalize produces a normalized transaction table from raw statement rows.
// The input slice is not modified. An unparseable date fails the whole call;
// unparseable amounts and balances become missing values (NaN) and the row
// is kept.
func Normalize(_ context.Context, raw []model.RawTransaction) ([]model.Transaction, error) {
	txns := make([]model.Transaction, 0, len(raw))

	for i, r := range raw {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Hour:        parseHour(r.Time),
			Amount:      parseMoney(r.Amount),
			Balance:     parseMoney(r.Balance),
			Category:    resolveCategory(r),
			Description: r.Description,
		})
	}

	return txns, nil
}

// parseDate tries each accepted layout and truncates to midnight so that
// calendar-day grouping works regardless of the source format.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", common.ErrUnparseableDate)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", common.ErrUnparseableDate, s)
}

// parseHour extracts the hour from an HH:MM value. Absent or malformed times
// fall back to noon, the documented default for rows without a time-of-day.
func parseHour(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultHour
	}

	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()
		}
	}

	return defaultHour
}

// moneyCleaner strips the KSh currency marker, thousands separators, and
// whitespace before numeric parsing.
var moneyCleaner = strings.NewReplacer("KSh", "", "Ksh", "", "KSH", "", ",", "", " ", "", "\t", "")

// parseMoney cleans a statement money string and parses it as a float.
// Values that cannot be parsed are returned as NaN so aggregates can skip
// them without dropping the row.
func parseMoney(s string) float64 {
	cleaned := moneyCleaner.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

// resolveCategory honors an explicit category label when present and falls
// back to keyword inference over the description otherwise.
func resolveCategory(r model.RawTransaction) model.Category {
	if strings.TrimSpace(r.Category) != "" {
		return model.ParseCategory(r.Category)
	}

	return InferCategory(r.Description)
}
