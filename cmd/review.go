package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/track"
	"github.com/alignhq/align/internal/tui"
	"github.com/alignhq/align/internal/ui"
)

var reviewCmd = &cobra.Command{
	Use:     "review",
	Aliases: []string{"r"},
	Short:   "Run this week's review",
	Long: `Score each life category 0-10 for the current week and note wins and
adjustments. Running it again in the same week edits the saved review.`,
	RunE: runReview,
}

func init() {
	reviewCmd.AddCommand(reviewShowCmd)
}

func runReview(_ *cobra.Command, _ []string) error {
	db, ts, err := openTrackStore()
	if err != nil {
		return err
	}
	defer db.Close()

	weekStart := progress.StartOfWeek(progress.SystemClock{})
	existing, err := ts.GetReview(weekStart)
	if err != nil {
		return err
	}

	cats, err := ts.ListCategories()
	if err != nil {
		return err
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}

	result, err := tui.RunReview(weekStart, names, existing)
	if err != nil {
		return err
	}
	if !result.Submitted {
		ui.Inf("Review discarded.")
		return nil
	}

	if err := ts.UpsertReview(track.WeeklyReview{
		WeekStart:   weekStart,
		Scores:      result.Scores,
		Wins:        result.Wins,
		Adjustments: result.Adjustments,
	}); err != nil {
		return err
	}

	if existing != nil {
		ui.Ok("Review for week of " + weekStart + " updated.")
	} else {
		ui.Ok("Review for week of " + weekStart + " saved.")
	}
	return nil
}

var reviewShowCmd = &cobra.Command{
	Use:   "show [week-start]",
	Short: "Show a saved weekly review",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		var review *track.WeeklyReview
		if len(args) == 1 {
			review, err = ts.GetReview(args[0])
		} else {
			review, err = ts.LatestReview()
		}
		if err != nil {
			return err
		}
		if review == nil {
			ui.Inf("No review found.")
			ui.Tip("`align review` to run one.")
			return nil
		}

		ui.Header(ui.IconReview + " Week of " + review.WeekStart)
		names := make([]string, 0, len(review.Scores))
		for name := range review.Scores {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ui.Kv(name, fmt.Sprintf("%d/10", review.Scores[name]))
		}
		if review.Wins != "" {
			fmt.Println()
			ui.Kv("Wins", review.Wins)
		}
		if review.Adjustments != "" {
			ui.Kv("Adjustments", review.Adjustments)
		}
		fmt.Println()
		return nil
	},
}
