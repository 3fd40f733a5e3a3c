package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/milestone"
	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime stats and milestone badges",
	RunE: func(_ *cobra.Command, _ []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := ts.Stats(progress.SystemClock{})
		if err != nil {
			return err
		}

		ui.Header(ui.IconTrophy + " Stats")
		ui.Kv("Actions logged", strconv.Itoa(stats.TotalLogs))
		ui.Kv("Current streak", ui.StreakBadge(stats.Streak))
		ui.Kv("Weekly reviews", strconv.Itoa(stats.TotalReviews))
		fmt.Println()

		ui.Header("Milestones")
		for _, b := range milestone.Badges {
			if b.Condition(*stats) {
				fmt.Printf("  %s %s %s\n", b.Icon, b.Title, ui.Muted.Render("· "+b.Description))
			} else {
				fmt.Printf("  %s %s %s\n", ui.IconLock, ui.Muted.Render(b.Title), ui.Muted.Render("· "+b.Description))
			}
		}
		fmt.Println()
		return nil
	},
}
