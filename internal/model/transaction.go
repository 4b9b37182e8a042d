// Package model defines the core domain types shared across the application.
package model

import (
	"math"
	"strings"
	"time"
)

// Category classifies a mobile-money transaction by its purpose.
type Category string

// Transaction categories recognized by the scorer.
const (
	CategoryAirtime  Category = "Airtime"
	CategorySend     Category = "Send"
	CategoryWithdraw Category = "Withdraw"
	CategoryPayment  Category = "Payment"
	CategoryIncome   Category = "Income"
	CategoryUnknown  Category = "Unknown"
)

// ParseCategory maps an explicit category label from a statement to a known
// Category. Labels that match no known category resolve to CategoryUnknown.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "airtime":
		return CategoryAirtime
	case "send":
		return CategorySend
	case "withdraw":
		return CategoryWithdraw
	case "payment":
		return CategoryPayment
	case "income":
		return CategoryIncome
	default:
		return CategoryUnknown
	}
}

// RawTransaction is one row of a parsed statement before normalization.
// All fields arrive as strings exactly as the statement parser produced them;
// only Date is required.
type RawTransaction struct {
	Date        string
	Time        string
	Amount      string
	Balance     string
	Category    string
	Description string
}

// Transaction is a normalized statement row. Amount and Balance use NaN to
// mark values that were absent or failed numeric parsing; such rows stay in
// the table but are excluded from numeric aggregates.
type Transaction struct {
	Date        time.Time
	Description string
	Category    Category
	Amount      float64
	Balance     float64
	Hour        int
}

// HasAmount reports whether the row carried a parseable amount.
func (t Transaction) HasAmount() bool {
	return !math.IsNaN(t.Amount)
}

// HasBalance reports whether the row carried a parseable balance.
func (t Transaction) HasBalance() bool {
	return !math.IsNaN(t.Balance)
}

// IsRounded reports whether the amount is an exact multiple of 100.
// A missing amount is never rounded; an amount of exactly 0 is.
func (t Transaction) IsRounded() bool {
	return t.HasAmount() && math.Mod(math.Abs(t.Amount), 100) == 0
}
