// Package score computes behavioral features over a normalized transaction
// table and folds them through a fixed rule engine into a credit score and a
// loan recommendation.
package score

import (
	"math"
	"sort"
	"time"

	"github.com/finscore-dev/finscore/internal/model"
)

// Extract computes the seven behavioral features over the full table. Every
// feature is independent; rows with missing amounts or balances stay in the
// row count but are skipped by the aggregates that need those values.
func Extract(txns []model.Transaction) model.FeatureSet {
	fs := model.FeatureSet{
		IncomeRegularity: model.IncomeRegularitySentinel,
	}

	if len(txns) == 0 {
		return fs
	}

	fs.AvgDailyBalance = avgDailyBalance(txns)
	fs.IncomeRegularity = incomeRegularity(txns)
	fs.NightRatio = countRatio(txns, func(t model.Transaction) bool {
		return t.Hour >= 22 || t.Hour <= 5
	})
	fs.AirtimeRatio = countRatio(txns, func(t model.Transaction) bool {
		return t.Category == model.CategoryAirtime
	})
	fs.RoundedRatio = countRatio(txns, model.Transaction.IsRounded)
	fs.TxnsPerDay = txnsPerDay(txns)
	fs.LowBalanceRatio = countRatio(txns, func(t model.Transaction) bool {
		return t.HasBalance() && t.Balance < 500
	})

	return fs
}

// countRatio returns the fraction of rows satisfying pred.
func countRatio(txns []model.Transaction, pred func(model.Transaction) bool) float64 {
	count := 0
	for _, t := range txns {
		if pred(t) {
			count++
		}
	}

	return float64(count) / float64(len(txns))
}

// avgDailyBalance is the mean over calendar days of the last parseable
// balance observed that day, in row order. Days without any balance are
// excluded; if no day has one the feature is 0.
func avgDailyBalance(txns []model.Transaction) float64 {
	lastByDay := make(map[time.Time]float64)
	for _, t := range txns {
		if t.HasBalance() {
			lastByDay[t.Date] = t.Balance
		}
	}

	if len(lastByDay) == 0 {
		return 0
	}

	var sum float64
	for _, bal := range lastByDay {
		sum += bal
	}

	return sum / float64(len(lastByDay))
}

// incomeRegularity is the sample standard deviation, in days, of the gaps
// between consecutive income transactions sorted by date. With fewer than
// two gaps no spread can be computed and the sentinel is returned.
func incomeRegularity(txns []model.Transaction) float64 {
	var dates []time.Time
	for _, t := range txns {
		if t.Category == model.CategoryIncome {
			dates = append(dates, t.Date)
		}
	}

	if len(dates) < 3 {
		return model.IncomeRegularitySentinel
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	gaps := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		gaps = append(gaps, dates[i].Sub(dates[i-1]).Hours()/24)
	}

	return sampleStdDev(gaps)
}

// sampleStdDev computes the sample (n-1) standard deviation. The caller
// guarantees at least two values.
func sampleStdDev(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(len(values)-1))
}

// txnsPerDay divides the row count by the number of days spanned from the
// earliest to the latest date, flooring the divisor at one day.
func txnsPerDay(txns []model.Transaction) float64 {
	minDate, maxDate := txns[0].Date, txns[0].Date
	for _, t := range txns[1:] {
		if t.Date.Before(minDate) {
			minDate = t.Date
		}
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}
	}

	span := int(maxDate.Sub(minDate).Hours() / 24)
	if span < 1 {
		span = 1
	}

	return float64(len(txns)) / float64(span)
}
