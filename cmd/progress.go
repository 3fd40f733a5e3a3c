package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/config"
	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/ui"
)

var progressDays int

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p"},
	Short:   "Show progress across all action steps",
	Long: `Show each action step's recent history, completion against its
normalized target, and current streak.`,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().IntVar(&progressDays, "days", 0, "History window in days (default from config)")
}

func runProgress(cmd *cobra.Command, _ []string) error {
	days := progressDays
	if days == 0 {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		days = cfg.Track.HistoryWindow()
	}
	if days < 1 {
		return fmt.Errorf("invalid history window %d", days)
	}

	db, ts, err := openTrackStore()
	if err != nil {
		return err
	}
	defer db.Close()

	reports, err := ts.ProgressReport(progress.SystemClock{}, days)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		ui.Inf("Nothing to report yet.")
		ui.Tip("`align action add` to commit to a step, then `align done` to log it.")
		return nil
	}

	ui.Header(ui.IconGoal + " Progress")
	for _, r := range reports {
		fmt.Printf("  %s %s\n", r.Step.Title, ui.Muted.Render("· "+r.Step.GoalTitle))
		fmt.Printf("    %s\n", ui.HistoryStrip(r.Summary.History))
		fmt.Printf("    %s\n", ui.HistoryLabels(r.Summary.History))
		fmt.Printf("    %s  %s\n",
			ui.ProgressBar(r.Summary.Percentage, 20),
			ui.Muted.Render(fmt.Sprintf("%g of %g", r.Summary.Total, r.Target)))
		fmt.Printf("    %s\n\n", ui.StreakBadge(r.Streak))
	}
	return nil
}
