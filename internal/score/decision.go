package score

import (
	"math"

	"github.com/finscore-dev/finscore/internal/model"
)

// loanTier pairs a score floor with its fixed loan offer.
type loanTier struct {
	minScore float64
	offer    model.Recommendation
}

// loanTiers maps score bands to offers, highest band first. The first tier
// whose floor the score meets wins. Message and color strings are part of
// the presentation contract and must not be reworded.
var loanTiers = []loanTier{
	{80, model.Recommendation{
		Decision: model.DecisionApprove,
		Tier:     model.TierExcellent,
		Amount:   50000,
		Interest: "8%",
		Message:  "Excellent credit behavior. Low risk borrower.",
		Color:    "green",
	}},
	{65, model.Recommendation{
		Decision: model.DecisionApprove,
		Tier:     model.TierGood,
		Amount:   25000,
		Interest: "12%",
		Message:  "Good credit behavior. Moderate risk.",
		Color:    "lightgreen",
	}},
	{50, model.Recommendation{
		Decision: model.DecisionApprove,
		Tier:     model.TierFair,
		Amount:   10000,
		Interest: "15%",
		Message:  "Fair credit behavior. Higher interest rate.",
		Color:    "orange",
	}},
	{35, model.Recommendation{
		Decision: model.DecisionConditional,
		Tier:     model.TierConditional,
		Amount:   3000,
		Interest: "20%",
		Message:  "High risk. Small loan only.",
		Color:    "red",
	}},
	{math.Inf(-1), model.Recommendation{
		Decision: model.DecisionDecline,
		Tier:     model.TierDecline,
		Amount:   0,
		Interest: "N/A",
		Message:  "Unable to offer loan at this time.",
		Color:    "darkred",
	}},
}

// Decide maps a final score to its loan recommendation. Decide is a pure
// lookup over the fixed tiers.
func Decide(score float64) model.Recommendation {
	for _, t := range loanTiers {
		if score >= t.minScore {
			return t.offer
		}
	}

	// Unreachable: the last tier accepts any score.
	return loanTiers[len(loanTiers)-1].offer
}
