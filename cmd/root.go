package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/config"
	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/store"
	"github.com/alignhq/align/internal/tips"
	"github.com/alignhq/align/internal/track"
	"github.com/alignhq/align/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "align",
	Short: "Track who you want to become, one day at a time",
	Long:  `align — identity goals, daily action steps, and the streaks that connect them.`,
	RunE:  runDashboard,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(actionCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// openTrackStore opens the database and wraps it in a track store. The
// caller closes the returned DB.
func openTrackStore() (*store.DB, *track.Store, error) {
	db, err := store.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return db, track.NewStore(db.Conn()), nil
}

// runDashboard shows the at-a-glance view when you just type `align`.
func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !config.Initialized() {
		fmt.Println(ui.Greet(""))
		fmt.Println()
		fmt.Println("  Looks like this is your first time here.")
		fmt.Println()
		fmt.Printf("  Run %s to get started.\n", ui.Accent.Render("align init"))
		fmt.Println()
		return nil
	}

	fmt.Println(ui.Greet(cfg.User.Name))
	fmt.Println()

	db, ts, err := openTrackStore()
	if err != nil {
		return err
	}
	defer db.Close()

	clock := progress.SystemClock{}
	ui.Kv("📅 Today", time.Now().Format("Monday, January 2"))

	stats, err := ts.Stats(clock)
	if err != nil {
		return fmt.Errorf("loading stats: %w", err)
	}
	ui.Kv(ui.IconStreak+" Streak", ui.StreakBadge(stats.Streak))

	items, err := ts.TodayFocus(clock)
	if err != nil {
		return fmt.Errorf("loading today's focus: %w", err)
	}

	if len(items) == 0 {
		fmt.Println()
		ui.Inf("Nothing scheduled for today.")
		ui.Tip("`align goal add \"Become a runner\"` then `align action add` to start tracking.")
		fmt.Println()
		return nil
	}

	ui.Header("Today's Focus")
	doneCnt := 0
	for _, item := range items {
		marker := ui.Muted.Render("○")
		detail := ""
		if item.TodayLog != nil && progress.Done(progress.Log{
			IsComplete:   item.TodayLog.IsComplete,
			NumericValue: item.TodayLog.NumericValue,
		}) {
			marker = ui.Success.Render("●")
			doneCnt++
			if item.Step.Type == progress.TypeNumeric {
				detail = ui.Muted.Render(fmt.Sprintf("  (%g)", item.TodayLog.NumericValue))
			}
		}
		id := ui.Muted.Render(item.Step.ID[:8])
		fmt.Printf("  %s %s %s%s\n", marker, id, item.Step.Title, detail)
	}

	fmt.Println()
	ui.Putsf("  %s", ui.Muted.Render(fmt.Sprintf("%d/%d done today", doneCnt, len(items))))

	if doneCnt < len(items) {
		ui.Tip("`align done <id>` to check something off.")
	} else {
		ui.Tip(tips.Daily(time.Now()))
	}
	fmt.Println()
	return nil
}
