package model

// FeatureSet holds the seven behavioral indicators computed over a normalized
// transaction table. Values are computed once per analysis and never updated.
type FeatureSet struct {
	AvgDailyBalance  float64 `json:"avg_daily_balance"`
	IncomeRegularity float64 `json:"income_regularity"`
	NightRatio       float64 `json:"night_ratio"`
	AirtimeRatio     float64 `json:"airtime_ratio"`
	RoundedRatio     float64 `json:"rounded_ratio"`
	TxnsPerDay       float64 `json:"txns_per_day"`
	LowBalanceRatio  float64 `json:"low_balance_ratio"`
}

// IncomeRegularitySentinel stands in for "maximally irregular" when fewer
// than two income transactions exist and no gap statistic can be computed.
const IncomeRegularitySentinel = 999

// Decision is the loan decision tag exposed to callers.
type Decision string

// Loan decisions.
const (
	DecisionApprove     Decision = "APPROVE"
	DecisionConditional Decision = "CONDITIONAL"
	DecisionDecline     Decision = "DECLINE"
)

// Tier identifies one of the five fixed loan bands. Tiers TierFair and
// TierConditional share warning-grade presentation but remain distinct:
// TierFair is still an approval.
type Tier string

// Loan tiers, highest score band first.
const (
	TierExcellent   Tier = "excellent"
	TierGood        Tier = "good"
	TierFair        Tier = "fair"
	TierConditional Tier = "conditional"
	TierDecline     Tier = "decline"
)

// Recommendation is the fixed loan offer selected by the final score band.
type Recommendation struct {
	Decision Decision `json:"decision"`
	Tier     Tier     `json:"tier"`
	Amount   int      `json:"amount"`
	Interest string   `json:"interest"`
	Message  string   `json:"message"`
	Color    string   `json:"color"`
}

// Result is the complete output of one analysis run.
type Result struct {
	Score          float64        `json:"score"`
	Recommendation Recommendation `json:"recommendation"`
	Features       FeatureSet     `json:"features"`
	Reasons        []string       `json:"reasons"`
}
