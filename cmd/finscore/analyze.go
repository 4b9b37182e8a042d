package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finscore-dev/finscore/internal/common"
	"github.com/finscore-dev/finscore/internal/normalize"
	"github.com/finscore-dev/finscore/internal/report"
	"github.com/finscore-dev/finscore/internal/score"
	"github.com/finscore-dev/finscore/internal/statement"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <statement.csv>",
		Short: "Score a mobile-money statement",
		Long: `Analyze a transaction statement CSV and produce a credit score with a
loan recommendation.

The statement needs a date column; time, amount, balance, and a category or
description column are used when present. Scoring thresholds can be tuned
under the "scoring" section of the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().Bool("json", false, "Emit the result as JSON instead of a styled report")

	_ = viper.BindPFlag("analyze.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	raw, err := statement.ParseFile(args[0])
	if err != nil {
		return common.NewUserError("Failed to read statement", err)
	}

	if maxRows := viper.GetInt("limits.max_rows"); maxRows > 0 && len(raw) > maxRows {
		return common.NewUserError(
			fmt.Sprintf("Statement has %d rows, limit is %d", len(raw), maxRows),
			common.ErrTooManyRows)
	}

	common.LogDebug("statement parsed", common.Fields{"file": args[0], "rows": len(raw)})

	txns, err := normalize.Normalize(ctx, raw)
	if err != nil {
		common.LogError(err, "normalization failed", common.Fields{"file": args[0]})
		return common.NewUserError("Failed to normalize statement", err)
	}

	rules, err := loadRuleset()
	if err != nil {
		return err
	}

	result := score.NewScorer(rules).AnalyzeTable(ctx, txns)

	formatter := report.NewFormatter()
	if viper.GetBool("analyze.json") {
		out, err := formatter.FormatJSON(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.Format(result, report.Summarize(txns)))

	return nil
}

// loadRuleset starts from the default scoring rules and applies any
// overrides from the "scoring" config section.
func loadRuleset() (score.Ruleset, error) {
	rules := score.DefaultRuleset()

	if viper.IsSet("scoring") {
		if err := viper.UnmarshalKey("scoring", &rules); err != nil {
			return rules, fmt.Errorf("%w: scoring section: %v", common.ErrInvalidConfig, err)
		}
	}

	return rules, nil
}
