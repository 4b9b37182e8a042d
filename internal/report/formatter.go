package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/finscore-dev/finscore/internal/model"
)

// Summary holds the statement-level stats shown in the report header.
type Summary struct {
	PeriodStart  time.Time
	PeriodEnd    time.Time
	TotalInflow  float64
	TotalOutflow float64
	Rows         int
}

// Summarize computes header stats over a normalized table. Rows without a
// parseable amount count toward the row total but not the flow totals.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{Rows: len(txns)}
	if len(txns) == 0 {
		return s
	}

	s.PeriodStart, s.PeriodEnd = txns[0].Date, txns[0].Date
	for _, t := range txns {
		if t.Date.Before(s.PeriodStart) {
			s.PeriodStart = t.Date
		}
		if t.Date.After(s.PeriodEnd) {
			s.PeriodEnd = t.Date
		}
		if !t.HasAmount() {
			continue
		}
		if t.Amount >= 0 {
			s.TotalInflow += t.Amount
		} else {
			s.TotalOutflow += -t.Amount
		}
	}

	return s
}

// Formatter renders analysis results for terminal display.
type Formatter struct {
	styles *Styles
}

// NewFormatter creates a formatter with default styles.
func NewFormatter() *Formatter {
	return &Formatter{styles: NewStyles()}
}

// Format renders the full styled report: header, score, decision badge,
// feature table, and the fired rule reasons in evaluation order.
func (f *Formatter) Format(result *model.Result, summary Summary) string {
	sections := []string{
		f.formatHeader(summary),
		f.formatScore(result),
		f.formatRecommendation(result.Recommendation),
		f.formatFeatures(result.Features),
	}

	if len(result.Reasons) > 0 {
		sections = append(sections, f.formatReasons(result.Reasons))
	}

	return strings.Join(sections, "\n\n")
}

// FormatJSON renders the result as indented JSON for machine consumers.
func (f *Formatter) FormatJSON(result *model.Result) (string, error) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}

	return string(out), nil
}

func (f *Formatter) formatHeader(summary Summary) string {
	title := f.styles.Title.Render("FinScore Credit Analysis")

	if summary.Rows == 0 {
		return fmt.Sprintf("%s\n%s", title, f.styles.Subtle.Render("No transactions in statement"))
	}

	period := fmt.Sprintf("Period: %s to %s  ·  %d transactions",
		summary.PeriodStart.Format("Jan 2, 2006"),
		summary.PeriodEnd.Format("Jan 2, 2006"),
		summary.Rows)
	flows := fmt.Sprintf("In: KSh %.2f  ·  Out: KSh %.2f",
		summary.TotalInflow, summary.TotalOutflow)

	return fmt.Sprintf("%s\n%s\n%s",
		title,
		f.styles.Subtitle.Render(period),
		f.styles.Subtle.Render(flows))
}

func (f *Formatter) formatScore(result *model.Result) string {
	score := f.styles.Score.Render(fmt.Sprintf("%.1f", result.Score))
	line := fmt.Sprintf("Credit Score  %s / 100", score)

	return f.styles.ScoreBox.Render(line)
}

func (f *Formatter) formatRecommendation(rec model.Recommendation) string {
	badge := f.styles.badgeStyle(rec.Color).Render(string(rec.Decision))

	offer := "No loan offer"
	if rec.Amount > 0 {
		offer = fmt.Sprintf("%s at %s interest", FormatKES(rec.Amount), rec.Interest)
	}

	return fmt.Sprintf("%s  %s\n%s",
		badge,
		f.styles.Value.Render(offer),
		f.styles.Normal.Render(rec.Message))
}

func (f *Formatter) formatFeatures(features model.FeatureSet) string {
	regularity := fmt.Sprintf("%.1f days", features.IncomeRegularity)
	if features.IncomeRegularity >= model.IncomeRegularitySentinel {
		regularity = "no pattern"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Avg daily balance", fmt.Sprintf("KSh %.2f", features.AvgDailyBalance)},
		{"Income regularity", regularity},
		{"Night activity", percent(features.NightRatio)},
		{"Airtime purchases", percent(features.AirtimeRatio)},
		{"Rounded amounts", percent(features.RoundedRatio)},
		{"Transactions per day", fmt.Sprintf("%.2f", features.TxnsPerDay)},
		{"Low balance days", percent(features.LowBalanceRatio)},
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, f.styles.Title.Render("Behavioral Indicators"))
	for _, r := range rows {
		lines = append(lines, f.styles.Label.Render(r.label)+f.styles.Value.Render(r.value))
	}

	return strings.Join(lines, "\n")
}

func (f *Formatter) formatReasons(reasons []string) string {
	lines := make([]string, 0, len(reasons)+1)
	lines = append(lines, f.styles.Title.Render("Scoring Factors"))
	for _, r := range reasons {
		lines = append(lines, f.styles.Reason.Render("  • "+r))
	}

	return strings.Join(lines, "\n")
}

// FormatKES renders a loan amount with thousands separators, e.g. KES 50,000.
func FormatKES(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) > 3 {
		var b strings.Builder
		rem := len(s) % 3
		if rem > 0 {
			b.WriteString(s[:rem])
		}
		for i := rem; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}

	return "KES " + s
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}
