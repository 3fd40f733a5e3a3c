// Package coach builds the AI coaching prompt from tracked goals, recent
// performance, and reflections, and runs it against the configured provider.
package coach

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alignhq/align/internal/ai"
	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/track"
)

const systemPrompt = `You are an elite productivity coach for an app called "Align".
Your goal is to connect the user's STATED IDENTITY (goals) with their ACTUAL BEHAVIOR (logs) and REFLECTIONS (review).
Analyze the gap between their goals and their actions.
Look for patterns in their weekly review scores vs their missed actions.
Be concise (max 3 sentences).
Be encouraging but direct. Call them out if they are slacking in an area they rated low.
Address the user as "you".`

// performanceDays is how far back the coach looks at activity.
const performanceDays = 7

// Coach assembles coaching context and queries a provider.
type Coach struct {
	Store          *track.Store
	Provider       ai.Provider
	Clock          progress.Clock
	IncludeJournal bool
}

// BuildPrompt renders the data context for the provider: identity goals,
// per-step completion counts over the last week, the latest weekly review,
// and, when enabled, recent journal entries.
func (c *Coach) BuildPrompt() (string, error) {
	goals, err := c.Store.ListGoals(false)
	if err != nil {
		return "", fmt.Errorf("loading goals: %w", err)
	}
	if len(goals) == 0 {
		return "", fmt.Errorf("no goals to analyze yet; add one with `align goal add`")
	}

	reports, err := c.Store.ProgressReport(c.Clock, performanceDays)
	if err != nil {
		return "", fmt.Errorf("loading performance: %w", err)
	}

	var b strings.Builder
	b.WriteString("DATA CONTEXT:\n\n1. IDENTITY GOALS:\n")
	for _, g := range goals {
		fmt.Fprintf(&b, "- %s (%s)\n", g.Title, g.Category)
	}

	b.WriteString("\n2. ACTUAL PERFORMANCE (last 7 days):\n")
	if len(reports) == 0 {
		b.WriteString("No action steps tracked yet.\n")
	}
	for _, r := range reports {
		done := 0
		for _, d := range r.Summary.History {
			if d.Done {
				done++
			}
		}
		fmt.Fprintf(&b, "- Action: %q (identity: %s). Completed %d of the last %d days. Current streak: %d.\n",
			r.Step.Title, r.Step.GoalTitle, done, performanceDays, r.Streak)
	}

	b.WriteString("\n3. LATEST REFLECTION:\n")
	review, err := c.Store.LatestReview()
	if err != nil {
		return "", fmt.Errorf("loading review: %w", err)
	}
	if review == nil {
		b.WriteString("No weekly review found yet.\n")
	} else {
		fmt.Fprintf(&b, "Week of %s.\n", review.WeekStart)
		if len(review.Scores) > 0 {
			cats := make([]string, 0, len(review.Scores))
			for cat := range review.Scores {
				cats = append(cats, cat)
			}
			sort.Strings(cats)
			b.WriteString("Category scores: ")
			for i, cat := range cats {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%s %d/10", cat, review.Scores[cat])
			}
			b.WriteString("\n")
		}
		if review.Wins != "" {
			fmt.Fprintf(&b, "Wins: %s\n", review.Wins)
		}
		if review.Adjustments != "" {
			fmt.Fprintf(&b, "Adjustments: %s\n", review.Adjustments)
		}
	}

	if c.IncludeJournal {
		entries, err := c.Store.RecentJournal(performanceDays)
		if err != nil {
			return "", fmt.Errorf("loading journal: %w", err)
		}
		if len(entries) > 0 {
			b.WriteString("\n4. RECENT JOURNAL:\n")
			for _, e := range entries {
				if e.Diary != "" {
					fmt.Fprintf(&b, "- %s: %s\n", e.Date, e.Diary)
				}
				if e.Gratitude != "" {
					fmt.Fprintf(&b, "- %s (grateful for): %s\n", e.Date, e.Gratitude)
				}
			}
		}
	}

	return b.String(), nil
}

// Insight builds the prompt and returns the provider's full analysis.
func (c *Coach) Insight(ctx context.Context, model string) (*ai.Response, error) {
	prompt, err := c.BuildPrompt()
	if err != nil {
		return nil, err
	}

	req := ai.NewRequest(prompt)
	req.System = systemPrompt
	req.Model = model
	return c.Provider.Complete(ctx, req)
}

// StreamInsight builds the prompt and streams the analysis to w.
func (c *Coach) StreamInsight(ctx context.Context, model string, w io.Writer) error {
	prompt, err := c.BuildPrompt()
	if err != nil {
		return err
	}

	req := ai.NewRequest(prompt)
	req.System = systemPrompt
	req.Model = model
	return c.Provider.Stream(ctx, req, w)
}
