package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/ui"
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage identity goals",
	Long: `Identity goals name who you want to become ("Become a runner"). Each goal
groups the recurring action steps that get you there.`,
	RunE: runGoalList,
}

var (
	goalCategory     string
	goalColor        string
	goalListArchived bool
)

func init() {
	goalAddCmd.Flags().StringVarP(&goalCategory, "category", "c", "Personal", "Life category for this goal")
	goalAddCmd.Flags().StringVar(&goalColor, "color", "", "Display color (hex)")
	goalListCmd.Flags().BoolVarP(&goalListArchived, "all", "a", false, "Include archived goals")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalArchiveCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	goalCmd.AddCommand(goalCategoriesCmd)
}

var goalAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an identity goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := ts.AddGoal(args[0], goalCategory, goalColor, progress.TypeBoolean, 0)
		if err != nil {
			return err
		}

		ui.Ok(fmt.Sprintf("Goal added: %s", args[0]))
		ui.Tip(fmt.Sprintf("`align action add --goal %s \"<first step>\"` to make it real.", id[:8]))
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	RunE:  runGoalList,
}

func runGoalList(_ *cobra.Command, _ []string) error {
	db, ts, err := openTrackStore()
	if err != nil {
		return err
	}
	defer db.Close()

	goals, err := ts.ListGoals(goalListArchived)
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		ui.Inf("No goals yet.")
		ui.Tip("`align goal add \"Become a runner\"` to name your first one.")
		return nil
	}

	ui.Header(ui.IconGoal + " Goals")
	for _, g := range goals {
		id := ui.Muted.Render(g.ID[:8])
		line := fmt.Sprintf("  %s %s %s", id, g.Title, ui.Muted.Render("("+g.Category+")"))
		if g.Archived {
			line += ui.Muted.Render(" [archived]")
		}
		fmt.Println(line)
	}
	fmt.Println()
	return nil
}

var goalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a goal and its action steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		g, err := ts.GetGoal(args[0])
		if err != nil {
			return err
		}

		ui.Header(ui.IconGoal + " " + g.Title)
		ui.Kv("Category", g.Category)
		ui.Kv("Created", g.CreatedAt.Format("2006-01-02"))
		if g.Archived {
			ui.Kv("Status", "archived")
		}

		steps, err := ts.ListActions(g.ID)
		if err != nil {
			return err
		}
		if len(steps) == 0 {
			fmt.Println()
			ui.Inf("No action steps yet.")
			return nil
		}

		fmt.Println()
		for _, s := range steps {
			fmt.Printf("  %s %s %s %s\n",
				ui.Muted.Render(s.ID[:8]),
				ui.IconAction,
				s.Title,
				ui.Muted.Render(describeSchedule(s)))
		}
		fmt.Println()
		return nil
	},
}

var goalArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a goal (keeps its history)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := ts.ArchiveGoal(args[0]); err != nil {
			return err
		}
		ui.Ok("Goal archived.")
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal and all its steps and logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		g, err := ts.GetGoal(args[0])
		if err != nil {
			return err
		}
		if err := ts.DeleteGoal(g.ID); err != nil {
			return err
		}
		ui.Ok(fmt.Sprintf("Deleted %q and its history.", g.Title))
		return nil
	},
}

var goalCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List life categories",
	RunE: func(_ *cobra.Command, _ []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		cats, err := ts.ListCategories()
		if err != nil {
			return err
		}
		for _, c := range cats {
			fmt.Printf("  %s %s\n", c.Name, ui.Muted.Render(c.Color))
		}
		return nil
	},
}
