package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/ai"
	"github.com/alignhq/align/internal/coach"
	"github.com/alignhq/align/internal/config"
	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/ui"
)

var (
	coachModel string
	coachRaw   bool
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Get an AI read on your goals vs your behavior",
	Long: `Send your goals, the last week of activity, and your latest review to
the configured AI provider and stream back a short coaching insight.`,
	RunE: runCoach,
}

func init() {
	coachCmd.Flags().StringVarP(&coachModel, "model", "m", "", "Model override for this run")
	coachCmd.Flags().BoolVar(&coachRaw, "raw", false, "Print raw markdown without rendering")
}

func runCoach(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ks := ai.NewKeyStore()
	if err := ks.Load(); err != nil {
		return err
	}
	key, err := ks.Get(cfg.AI.Provider)
	if err != nil {
		return err
	}

	provider, err := ai.New(cfg.AI.Provider, key)
	if err != nil {
		return err
	}

	model := coachModel
	if model == "" {
		model = cfg.AI.Model
	}

	db, ts, err := openTrackStore()
	if err != nil {
		return err
	}
	defer db.Close()

	c := &coach.Coach{
		Store:          ts,
		Provider:       provider,
		Clock:          progress.SystemClock{},
		IncludeJournal: cfg.Coach.JournalAllowed(),
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 120*time.Second)
	defer cancel()

	ui.Header(ui.IconCoach + " Coach")
	w := ui.NewMarkdownWriter(os.Stdout, coachRaw)
	if err := c.StreamInsight(ctx, model, w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
