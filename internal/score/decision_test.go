package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finscore-dev/finscore/internal/model"
)

func TestDecide_BandBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		score        float64
		wantDecision model.Decision
		wantTier     model.Tier
		wantAmount   int
		wantInterest string
	}{
		{name: "top score", score: 100, wantDecision: model.DecisionApprove, wantTier: model.TierExcellent, wantAmount: 50000, wantInterest: "8%"},
		{name: "exactly 80", score: 80, wantDecision: model.DecisionApprove, wantTier: model.TierExcellent, wantAmount: 50000, wantInterest: "8%"},
		{name: "just under 80", score: 79.9, wantDecision: model.DecisionApprove, wantTier: model.TierGood, wantAmount: 25000, wantInterest: "12%"},
		{name: "exactly 65", score: 65, wantDecision: model.DecisionApprove, wantTier: model.TierGood, wantAmount: 25000, wantInterest: "12%"},
		{name: "just under 65", score: 64.9, wantDecision: model.DecisionApprove, wantTier: model.TierFair, wantAmount: 10000, wantInterest: "15%"},
		{name: "exactly 50", score: 50, wantDecision: model.DecisionApprove, wantTier: model.TierFair, wantAmount: 10000, wantInterest: "15%"},
		{name: "just under 50", score: 49.9, wantDecision: model.DecisionConditional, wantTier: model.TierConditional, wantAmount: 3000, wantInterest: "20%"},
		{name: "exactly 35", score: 35, wantDecision: model.DecisionConditional, wantTier: model.TierConditional, wantAmount: 3000, wantInterest: "20%"},
		{name: "just under 35", score: 34.9, wantDecision: model.DecisionDecline, wantTier: model.TierDecline, wantAmount: 0, wantInterest: "N/A"},
		{name: "floor", score: 0, wantDecision: model.DecisionDecline, wantTier: model.TierDecline, wantAmount: 0, wantInterest: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Decide(tt.score)
			assert.Equal(t, tt.wantDecision, rec.Decision)
			assert.Equal(t, tt.wantTier, rec.Tier)
			assert.Equal(t, tt.wantAmount, rec.Amount)
			assert.Equal(t, tt.wantInterest, rec.Interest)
			assert.NotEmpty(t, rec.Message)
			assert.NotEmpty(t, rec.Color)
		})
	}
}

func TestDecide_MessagesAreVerbatim(t *testing.T) {
	assert.Equal(t, "Excellent credit behavior. Low risk borrower.", Decide(85).Message)
	assert.Equal(t, "Good credit behavior. Moderate risk.", Decide(70).Message)
	assert.Equal(t, "Fair credit behavior. Higher interest rate.", Decide(55).Message)
	assert.Equal(t, "High risk. Small loan only.", Decide(40).Message)
	assert.Equal(t, "Unable to offer loan at this time.", Decide(10).Message)
}

func TestDecide_FairTierKeepsApproveTag(t *testing.T) {
	// The fair band is a real approval despite its warning-grade color; the
	// five-way tier keeps it distinct from both the good band above and the
	// conditional band below.
	rec := Decide(50)
	assert.Equal(t, model.DecisionApprove, rec.Decision)
	assert.Equal(t, model.TierFair, rec.Tier)
	assert.Equal(t, "orange", rec.Color)
}
