package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/ui"
)

var (
	doneDate string
	doneUndo bool
)

var doneCmd = &cobra.Command{
	Use:     "done <action> [value]",
	Aliases: []string{"log"},
	Short:   "Log an action step for today",
	Long: `Mark an action step done for today. Numeric steps take a value to log
against the target; logging again on the same day overwrites.

  align done abc123
  align done abc123 5.5
  align done abc123 --date 2026-03-01
  align done abc123 --undo`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDone,
}

func init() {
	doneCmd.Flags().StringVarP(&doneDate, "date", "d", "", "Log for this date instead of today (YYYY-MM-DD)")
	doneCmd.Flags().BoolVar(&doneUndo, "undo", false, "Remove the day's log instead")
}

func runDone(_ *cobra.Command, args []string) error {
	date := doneDate
	if date == "" {
		date = progress.Today(progress.SystemClock{})
	} else if _, err := time.ParseInLocation(progress.DateLayout, date, time.Local); err != nil {
		return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", doneDate)
	}

	db, ts, err := openTrackStore()
	if err != nil {
		return err
	}
	defer db.Close()

	step, err := ts.GetAction(args[0])
	if err != nil {
		return err
	}

	if doneUndo {
		if err := ts.ClearLog(step.ID, date); err != nil {
			return err
		}
		ui.Ok(fmt.Sprintf("Cleared %s for %q.", date, step.Title))
		return nil
	}

	var value float64
	if step.Type == progress.TypeNumeric {
		if len(args) < 2 {
			return fmt.Errorf("%q is numeric, pass a value: align done %s <value>", step.Title, step.ID[:8])
		}
		value, err = strconv.ParseFloat(args[1], 64)
		if err != nil || value < 0 {
			return fmt.Errorf("invalid value %q", args[1])
		}
	} else if len(args) == 2 {
		return fmt.Errorf("%q is a checkbox step and takes no value", step.Title)
	}

	if err := ts.UpsertLog(step.ID, date, step.Type == progress.TypeBoolean, value); err != nil {
		return err
	}

	if step.Type == progress.TypeNumeric {
		ui.Ok(fmt.Sprintf("Logged %g for %q.", value, step.Title))
	} else {
		ui.Ok(fmt.Sprintf("%q done for %s.", step.Title, date))
	}

	logs, err := ts.LogsFor(step.ID)
	if err == nil {
		streak := progress.Streak(logs, step.Type, step.TargetValue, progress.SystemClock{})
		if streak >= 2 {
			ui.Puts("   " + ui.StreakBadge(streak))
		}
	}
	return nil
}
