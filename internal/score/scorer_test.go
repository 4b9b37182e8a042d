package score

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finscore-dev/finscore/internal/model"
)

// sampleStatement is ten rows over three weeks: weekly income, a couple of
// airtime top-ups, and routine payments with healthy balances.
func sampleStatement() []model.RawTransaction {
	return []model.RawTransaction{
		{Date: "2024-01-01", Time: "09:15", Amount: "KSh 15,050.50", Balance: "KSh 12,000", Category: "Income"},
		{Date: "2024-01-02", Time: "13:30", Amount: "-1500.50", Balance: "10000", Description: "Paid to till 832100"},
		{Date: "2024-01-05", Time: "10:00", Amount: "-99.50", Balance: "11900", Description: "Airtime purchase"},
		{Date: "2024-01-08", Time: "09:15", Amount: "KSh 15,050.50", Balance: "KSh 12,000", Category: "Income"},
		{Date: "2024-01-09", Time: "16:45", Amount: "-2000.50", Balance: "9500", Description: "Paid to till 832100"},
		{Date: "2024-01-15", Time: "09:15", Amount: "KSh 15,050.50", Balance: "KSh 12,000", Category: "Income"},
		{Date: "2024-01-16", Time: "11:20", Amount: "-750.25", Balance: "9000", Description: "Paid to till 832100"},
		{Date: "2024-01-19", Time: "10:00", Amount: "-99.50", Balance: "11900", Description: "Airtime purchase"},
		{Date: "2024-01-21", Time: "18:05", Amount: "-1200.75", Balance: "8500", Description: "Paid to till 832100"},
		{Date: "2024-01-22", Time: "09:15", Amount: "KSh 15,050.50", Balance: "KSh 12,000", Category: "Income"},
	}
}

func TestScorer_Analyze_EndToEnd(t *testing.T) {
	scorer := NewScorer(DefaultRuleset())

	result, err := scorer.Analyze(context.Background(), sampleStatement())
	require.NoError(t, err)

	// Balance: mean of last balance per day is 10,880 -> +10.
	assert.InDelta(t, 10880, result.Features.AvgDailyBalance, 0.0001)
	// Weekly income with zero gap spread -> +20.
	assert.InDelta(t, 0, result.Features.IncomeRegularity, 0.0001)
	// Two airtime rows of ten -> +10.
	assert.InDelta(t, 0.2, result.Features.AirtimeRatio, 0.0001)
	// No night rows, no rounded amounts, no low balances.
	assert.Zero(t, result.Features.NightRatio)
	assert.Zero(t, result.Features.RoundedRatio)
	assert.Zero(t, result.Features.LowBalanceRatio)
	// Ten rows over a 21 day span -> low activity, -5.
	assert.InDelta(t, 10.0/21.0, result.Features.TxnsPerDay, 0.0001)

	assert.InDelta(t, 85.0, result.Score, 0.0001)
	assert.Equal(t, model.DecisionApprove, result.Recommendation.Decision)
	assert.Equal(t, model.TierExcellent, result.Recommendation.Tier)
	assert.Equal(t, 50000, result.Recommendation.Amount)

	assert.Equal(t, []string{
		"Very regular income pattern",
		"Regular airtime purchases - stable behavior",
		"Low account activity",
	}, result.Reasons)
}

func TestScorer_Analyze_EmptyTableIsNeutral(t *testing.T) {
	scorer := NewScorer(DefaultRuleset())

	result, err := scorer.Analyze(context.Background(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, result.Score, 0.0001)
	assert.Equal(t, model.DecisionApprove, result.Recommendation.Decision)
	assert.Equal(t, model.TierFair, result.Recommendation.Tier)
	assert.Equal(t, 10000, result.Recommendation.Amount)
	assert.Equal(t, "15%", result.Recommendation.Interest)
	assert.Empty(t, result.Reasons)
	assert.EqualValues(t, model.IncomeRegularitySentinel, result.Features.IncomeRegularity)
}

func TestScorer_Analyze_UnparseableDateFails(t *testing.T) {
	scorer := NewScorer(DefaultRuleset())

	_, err := scorer.Analyze(context.Background(), []model.RawTransaction{
		{Date: "sometime last week", Amount: "100"},
	})
	require.Error(t, err)
}

func TestScorer_Analyze_GarbageAmountIsAbsorbed(t *testing.T) {
	scorer := NewScorer(DefaultRuleset())

	result, err := scorer.Analyze(context.Background(), []model.RawTransaction{
		{Date: "2024-01-01", Amount: "garbage", Balance: "1000"},
		{Date: "2024-01-02", Amount: "200", Balance: "1000"},
	})
	require.NoError(t, err)

	// The garbage row stays in the count but is never rounded.
	assert.InDelta(t, 0.5, result.Features.RoundedRatio, 0.0001)
	assert.InDelta(t, 2.0, result.Features.TxnsPerDay, 0.0001)
}

func TestScorer_AnalyzeTable_Idempotent(t *testing.T) {
	scorer := NewScorer(DefaultRuleset())
	ctx := context.Background()

	raw := sampleStatement()
	first, err := scorer.Analyze(ctx, raw)
	require.NoError(t, err)
	second, err := scorer.Analyze(ctx, raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScorer_Score_AlwaysInRangeWithOneDecimal(t *testing.T) {
	scorer := NewScorer(DefaultRuleset())
	ctx := context.Background()

	inputs := [][]model.RawTransaction{
		nil,
		sampleStatement(),
		{
			{Date: "2024-01-01", Time: "02:00", Amount: "100", Balance: "50"},
			{Date: "2024-01-01", Time: "03:00", Amount: "200", Balance: "40"},
			{Date: "2024-01-01", Time: "04:00", Amount: "300", Balance: "30"},
		},
	}

	for _, raw := range inputs {
		result, err := scorer.Analyze(ctx, raw)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 100.0)
		// At most one decimal place.
		assert.InDelta(t, result.Score, float64(int(result.Score*10+0.5))/10, 1e-9)
	}
}
