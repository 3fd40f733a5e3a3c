package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/track"
	"github.com/alignhq/align/internal/ui"
)

var actionCmd = &cobra.Command{
	Use:     "action",
	Aliases: []string{"a"},
	Short:   "Manage recurring action steps",
	Long: `Action steps are the recurring commitments under a goal: "Run 5km",
"Read 20 pages". Each is boolean (done / not done) or numeric (log a value
against a daily target), on a daily, weekly, or monthly cadence.`,
	RunE: runActionList,
}

var (
	actionGoal   string
	actionType   string
	actionPeriod string
	actionTarget float64
	actionDays   string
	actionEnd    string
)

func init() {
	addScheduleFlags := func(fs *pflag.FlagSet) {
		fs.StringVarP(&actionType, "type", "t", "boolean", "Tracking type: boolean or numeric")
		fs.StringVarP(&actionPeriod, "period", "p", "daily", "Cadence: daily, weekly, or monthly")
		fs.Float64Var(&actionTarget, "target", 0, "Per-period target for numeric steps")
		fs.StringVar(&actionDays, "days", "", "Weekday restriction for weekly steps (e.g. mon,wed,fri)")
		fs.StringVar(&actionEnd, "end", "", "End date (YYYY-MM-DD) closing the measurement window")
	}

	actionAddCmd.Flags().StringVarP(&actionGoal, "goal", "g", "", "Goal ID (or prefix) this step belongs to")
	actionAddCmd.MarkFlagRequired("goal")
	addScheduleFlags(actionAddCmd.Flags())
	addScheduleFlags(actionEditCmd.Flags())

	actionListCmd.Flags().StringVarP(&actionGoal, "goal", "g", "", "Only steps under this goal")

	actionCmd.AddCommand(actionAddCmd)
	actionCmd.AddCommand(actionListCmd)
	actionCmd.AddCommand(actionEditCmd)
	actionCmd.AddCommand(actionEndCmd)
	actionCmd.AddCommand(actionDeleteCmd)
}

var actionAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an action step under a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		typ, err := track.ParseStepType(actionType)
		if err != nil {
			return err
		}
		period, err := track.ParsePeriod(actionPeriod)
		if err != nil {
			return err
		}
		days, err := track.ParseDays(actionDays)
		if err != nil {
			return err
		}
		if err := validEndDate(actionEnd); err != nil {
			return err
		}

		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		goal, err := ts.GetGoal(actionGoal)
		if err != nil {
			return err
		}

		id, err := ts.AddAction(track.ActionStep{
			GoalID:      goal.ID,
			Title:       args[0],
			Type:        typ,
			Period:      period,
			TargetValue: actionTarget,
			Days:        days,
			EndDate:     actionEnd,
		})
		if err != nil {
			return err
		}

		ui.Ok(fmt.Sprintf("Action added under %q: %s", goal.Title, args[0]))
		ui.Tip(fmt.Sprintf("`align done %s` when you've done it.", id[:8]))
		return nil
	},
}

var actionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List action steps",
	RunE:  runActionList,
}

func runActionList(_ *cobra.Command, _ []string) error {
	db, ts, err := openTrackStore()
	if err != nil {
		return err
	}
	defer db.Close()

	goalID := ""
	if actionGoal != "" {
		goal, err := ts.GetGoal(actionGoal)
		if err != nil {
			return err
		}
		goalID = goal.ID
	}

	steps, err := ts.ListActions(goalID)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		ui.Inf("No action steps yet.")
		ui.Tip("`align action add --goal <id> \"Run 5km\"` to commit to one.")
		return nil
	}

	ui.Header(ui.IconAction + " Action Steps")
	for _, s := range steps {
		fmt.Printf("  %s %s %s %s\n",
			ui.Muted.Render(s.ID[:8]),
			s.Title,
			ui.Muted.Render("· "+s.GoalTitle),
			ui.Muted.Render(describeSchedule(s)))
	}
	fmt.Println()
	return nil
}

var actionEditCmd = &cobra.Command{
	Use:   "edit <id> [new title]",
	Short: "Edit an action step's title or schedule",
	Long: `Edit an action step. Only the fields you pass change; everything else
keeps its current value.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		step, err := ts.GetAction(args[0])
		if err != nil {
			return err
		}

		if len(args) == 2 {
			step.Title = args[1]
		}
		if err := applyScheduleFlags(cmd.Flags(), step); err != nil {
			return err
		}

		if err := ts.UpdateAction(*step); err != nil {
			return err
		}
		ui.Ok("Action updated.")
		return nil
	},
}

// applyScheduleFlags copies only the schedule flags the user actually set
// onto the step.
func applyScheduleFlags(fs *pflag.FlagSet, step *track.ActionStep) error {
	if fs.Changed("type") {
		typ, err := track.ParseStepType(actionType)
		if err != nil {
			return err
		}
		step.Type = typ
	}
	if fs.Changed("period") {
		period, err := track.ParsePeriod(actionPeriod)
		if err != nil {
			return err
		}
		step.Period = period
	}
	if fs.Changed("target") {
		step.TargetValue = actionTarget
	}
	if fs.Changed("days") {
		days, err := track.ParseDays(actionDays)
		if err != nil {
			return err
		}
		step.Days = days
	}
	if fs.Changed("end") {
		if err := validEndDate(actionEnd); err != nil {
			return err
		}
		step.EndDate = actionEnd
	}
	return nil
}

// validEndDate checks an end-date string; empty means open-ended.
func validEndDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.ParseInLocation(progress.DateLayout, s, time.Local); err != nil {
		return fmt.Errorf("invalid end date %q (use YYYY-MM-DD)", s)
	}
	return nil
}

var actionEndCmd = &cobra.Command{
	Use:   "end <id> <date>",
	Short: "Close a step's measurement window",
	Long:  `Set the end date (YYYY-MM-DD) after which the step no longer counts. Pass "" to reopen.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := validEndDate(args[1]); err != nil {
			return err
		}

		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := ts.SetEndDate(args[0], args[1]); err != nil {
			return err
		}
		if args[1] == "" {
			ui.Ok("Measurement window reopened.")
		} else {
			ui.Ok("Measurement window closes " + args[1] + ".")
		}
		return nil
	},
}

var actionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an action step and its logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		step, err := ts.GetAction(args[0])
		if err != nil {
			return err
		}
		if err := ts.DeleteAction(step.ID); err != nil {
			return err
		}
		ui.Ok(fmt.Sprintf("Deleted %q and its logs.", step.Title))
		return nil
	},
}

// describeSchedule renders a step's cadence for list views.
func describeSchedule(s track.ActionStep) string {
	parts := []string{string(s.Period)}
	if s.Type == progress.TypeNumeric && s.TargetValue > 0 {
		parts = append(parts, fmt.Sprintf("target %g", s.TargetValue))
	}
	if len(s.Days) > 0 {
		parts = append(parts, strings.Join(s.Days, ","))
	}
	if s.EndDate != "" {
		parts = append(parts, "until "+s.EndDate)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
