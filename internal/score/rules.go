package score

import (
	"math"

	"github.com/finscore-dev/finscore/internal/model"
)

// Band is one rung of a threshold ladder: crossing Threshold contributes
// Delta to the score and, when Reason is non-empty, appends it to the
// analysis reasons.
type Band struct {
	Reason    string  `mapstructure:"reason"`
	Threshold float64 `mapstructure:"threshold"`
	Delta     float64 `mapstructure:"delta"`
}

// IncomeRule scores income regularity. Bands hold ascending "less than"
// thresholds; Else fires when the regularity clears every band. Exactly one
// branch always fires.
type IncomeRule struct {
	Bands []Band `mapstructure:"bands"`
	Else  Band   `mapstructure:"else"`
}

// FrequencyRule scores transactions per day: a healthy range earns a bonus,
// very high or very low activity is penalized, anything between is neutral.
type FrequencyRule struct {
	HealthyReason string  `mapstructure:"healthy_reason"`
	HighReason    string  `mapstructure:"high_reason"`
	LowReason     string  `mapstructure:"low_reason"`
	HealthyMin    float64 `mapstructure:"healthy_min"`
	HealthyMax    float64 `mapstructure:"healthy_max"`
	HealthyDelta  float64 `mapstructure:"healthy_delta"`
	HighAbove     float64 `mapstructure:"high_above"`
	HighDelta     float64 `mapstructure:"high_delta"`
	LowBelow      float64 `mapstructure:"low_below"`
	LowDelta      float64 `mapstructure:"low_delta"`
}

// Ruleset holds every threshold and delta of the scoring rules as data, so
// deployments can tune them through configuration without code changes.
// Ladder bands are ordered: descending for "greater than" ladders, ascending
// for the income "less than" ladder.
type Ruleset struct {
	Income     IncomeRule    `mapstructure:"income"`
	Frequency  FrequencyRule `mapstructure:"frequency"`
	Balance    []Band        `mapstructure:"balance"`
	Night      []Band        `mapstructure:"night"`
	Airtime    []Band        `mapstructure:"airtime"`
	Rounded    []Band        `mapstructure:"rounded"`
	LowBalance []Band        `mapstructure:"low_balance"`
	Base       float64       `mapstructure:"base"`
}

// DefaultRuleset returns the standard scoring rules.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Base: 50,
		Balance: []Band{
			{Threshold: 50000, Delta: 20},
			{Threshold: 20000, Delta: 15},
			{Threshold: 10000, Delta: 10},
			{Threshold: 5000, Delta: 5},
			{Threshold: 1000, Delta: 2},
		},
		Income: IncomeRule{
			Bands: []Band{
				{Threshold: 3, Delta: 20, Reason: "Very regular income pattern"},
				{Threshold: 7, Delta: 15, Reason: "Regular income pattern"},
				{Threshold: 15, Delta: 5, Reason: "Somewhat regular income"},
			},
			Else: Band{Delta: -10, Reason: "Irregular income - risk factor"},
		},
		Night: []Band{
			{Threshold: 0.3, Delta: -20, Reason: "High night activity - potential risk"},
			{Threshold: 0.15, Delta: -10, Reason: "Moderate night activity"},
			{Threshold: 0.05, Delta: -5},
		},
		Airtime: []Band{
			{Threshold: 0.1, Delta: 10, Reason: "Regular airtime purchases - stable behavior"},
			{Threshold: 0.05, Delta: 5},
		},
		Rounded: []Band{
			{Threshold: 0.4, Delta: -15, Reason: "Many rounded amounts - possible gambling"},
			{Threshold: 0.2, Delta: -10, Reason: "Some rounded amounts"},
		},
		LowBalance: []Band{
			{Threshold: 0.3, Delta: -15, Reason: "Frequently low balance - cash flow issues"},
			{Threshold: 0.15, Delta: -8},
		},
		Frequency: FrequencyRule{
			HealthyMin:    3,
			HealthyMax:    8,
			HealthyDelta:  10,
			HealthyReason: "Healthy transaction activity",
			HighAbove:     15,
			HighDelta:     -10,
			HighReason:    "Very high transaction volume - business?",
			LowBelow:      0.5,
			LowDelta:      -5,
			LowReason:     "Low account activity",
		},
	}
}

// ruleFunc is one independent scoring step: a pure function from the feature
// set to a score delta and an optional reason. No step sees another step's
// output.
type ruleFunc func(model.FeatureSet, Ruleset) (float64, string)

// ruleBlocks returns the scoring steps in their fixed evaluation order,
// which also fixes the order of the reasons list.
func ruleBlocks() []ruleFunc {
	return []ruleFunc{
		func(f model.FeatureSet, rs Ruleset) (float64, string) {
			return evalAbove(rs.Balance, f.AvgDailyBalance)
		},
		func(f model.FeatureSet, rs Ruleset) (float64, string) {
			return evalIncome(rs.Income, f.IncomeRegularity)
		},
		func(f model.FeatureSet, rs Ruleset) (float64, string) {
			return evalAbove(rs.Night, f.NightRatio)
		},
		func(f model.FeatureSet, rs Ruleset) (float64, string) {
			return evalAbove(rs.Airtime, f.AirtimeRatio)
		},
		func(f model.FeatureSet, rs Ruleset) (float64, string) {
			return evalAbove(rs.Rounded, f.RoundedRatio)
		},
		func(f model.FeatureSet, rs Ruleset) (float64, string) {
			return evalAbove(rs.LowBalance, f.LowBalanceRatio)
		},
		func(f model.FeatureSet, rs Ruleset) (float64, string) {
			return evalFrequency(rs.Frequency, f.TxnsPerDay)
		},
	}
}

// evalAbove walks a descending ladder and fires the first band the value
// strictly exceeds.
func evalAbove(bands []Band, value float64) (float64, string) {
	for _, b := range bands {
		if value > b.Threshold {
			return b.Delta, b.Reason
		}
	}

	return 0, ""
}

// evalIncome walks the ascending ladder and fires the first band the value
// is strictly below, falling through to the Else band.
func evalIncome(rule IncomeRule, value float64) (float64, string) {
	for _, b := range rule.Bands {
		if value < b.Threshold {
			return b.Delta, b.Reason
		}
	}

	return rule.Else.Delta, rule.Else.Reason
}

// evalFrequency applies the three-way activity rule. The healthy range is
// inclusive on both ends.
func evalFrequency(rule FrequencyRule, value float64) (float64, string) {
	switch {
	case value >= rule.HealthyMin && value <= rule.HealthyMax:
		return rule.HealthyDelta, rule.HealthyReason
	case value > rule.HighAbove:
		return rule.HighDelta, rule.HighReason
	case value < rule.LowBelow:
		return rule.LowDelta, rule.LowReason
	default:
		return 0, ""
	}
}

// Apply runs every rule block in fixed order against the features, starting
// from the base score. The result is rounded to one decimal place and then
// clamped to [0, 100]; reasons are returned in evaluation order.
func (rs Ruleset) Apply(f model.FeatureSet) (float64, []string) {
	score := rs.Base
	reasons := []string{}

	for _, block := range ruleBlocks() {
		delta, reason := block(f, rs)
		score += delta
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	return clampScore(score), reasons
}

// clampScore rounds to one decimal place and clamps to the score range.
func clampScore(score float64) float64 {
	score = math.Round(score*10) / 10

	return math.Max(0, math.Min(100, score))
}
