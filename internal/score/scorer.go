package score

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finscore-dev/finscore/internal/model"
	"github.com/finscore-dev/finscore/internal/normalize"
)

// Scorer runs the full analysis pipeline: normalization, feature extraction,
// rule evaluation, and loan decision. A Scorer holds no per-analysis state,
// so one instance may serve concurrent analyses.
type Scorer struct {
	rules Ruleset
}

// NewScorer creates a scorer with the given ruleset.
func NewScorer(rules Ruleset) *Scorer {
	return &Scorer{rules: rules}
}

// Analyze scores raw statement rows end to end. It fails only when a date
// cannot be parsed; every other anomaly degrades to a documented feature
// default. An empty table yields the neutral base score without error.
func (s *Scorer) Analyze(ctx context.Context, raw []model.RawTransaction) (*model.Result, error) {
	txns, err := normalize.Normalize(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing transactions: %w", err)
	}

	return s.AnalyzeTable(ctx, txns), nil
}

// AnalyzeTable scores an already-normalized table. The table is read, never
// modified, so callers may keep using it afterwards.
func (s *Scorer) AnalyzeTable(_ context.Context, txns []model.Transaction) *model.Result {
	if len(txns) == 0 {
		neutral := clampScore(s.rules.Base)
		return &model.Result{
			Score:          neutral,
			Recommendation: Decide(neutral),
			Features:       Extract(nil),
			Reasons:        []string{},
		}
	}

	features := Extract(txns)
	finalScore, reasons := s.rules.Apply(features)
	rec := Decide(finalScore)

	slog.Debug("analysis complete",
		"rows", len(txns),
		"score", finalScore,
		"decision", rec.Decision,
		"tier", rec.Tier)

	return &model.Result{
		Score:          finalScore,
		Recommendation: rec,
		Features:       features,
		Reasons:        reasons,
	}
}
