// Package tui holds the interactive Bubbletea flows.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alignhq/align/internal/track"
	"github.com/alignhq/align/internal/ui"
)

const maxScore = 10

// ReviewResult is what the wizard hands back to the caller. Submitted is
// false when the user bailed out.
type ReviewResult struct {
	Scores      map[string]int
	Wins        string
	Adjustments string
	Submitted   bool
}

type reviewStep int

const (
	stepScores reviewStep = iota
	stepWins
	stepAdjustments
	stepConfirm
)

// ReviewModel is the two-phase weekly review wizard: score each life
// category 0-10, then capture wins and adjustments.
type ReviewModel struct {
	weekStart  string
	categories []string
	scores     []int
	cursor     int
	step       reviewStep

	winsInput string
	adjInput  string

	width  int
	height int

	Result   ReviewResult
	quitting bool
}

// NewReviewModel creates the wizard for a week. An existing review prefills
// the fields (edit mode).
func NewReviewModel(weekStart string, categories []string, existing *track.WeeklyReview) *ReviewModel {
	m := &ReviewModel{
		weekStart:  weekStart,
		categories: categories,
		scores:     make([]int, len(categories)),
		width:      80,
		height:     24,
	}
	for i := range m.scores {
		m.scores[i] = 5
	}
	if existing != nil {
		for i, cat := range categories {
			if score, ok := existing.Scores[cat]; ok {
				m.scores[i] = score
			}
		}
		m.winsInput = existing.Wins
		m.adjInput = existing.Adjustments
	}
	return m
}

// RunReview launches the interactive weekly review wizard.
func RunReview(weekStart string, categories []string, existing *track.WeeklyReview) (*ReviewResult, error) {
	m := NewReviewModel(weekStart, categories, existing)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	result, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("review tui: %w", err)
	}
	final := result.(*ReviewModel)
	return &final.Result, nil
}

func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.step {
		case stepScores:
			return m.handleScoresKey(msg)
		case stepWins, stepAdjustments:
			return m.handleTextKey(msg)
		default:
			return m.handleConfirmKey(msg)
		}
	}
	return m, nil
}

func (m *ReviewModel) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.categories)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "h", "left":
		if m.scores[m.cursor] > 0 {
			m.scores[m.cursor]--
		}

	case "l", "right":
		if m.scores[m.cursor] < maxScore {
			m.scores[m.cursor]++
		}

	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.scores[m.cursor] = int(msg.String()[0] - '0')

	case "enter", "tab":
		m.step = stepWins
	}
	return m, nil
}

func (m *ReviewModel) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	input := &m.winsInput
	if m.step == stepAdjustments {
		input = &m.adjInput
	}

	switch msg.String() {
	case "esc":
		// Back up a step rather than abandoning typed text.
		if m.step == stepAdjustments {
			m.step = stepWins
		} else {
			m.step = stepScores
		}

	case "enter", "tab":
		if m.step == stepWins {
			m.step = stepAdjustments
		} else {
			m.step = stepConfirm
		}

	case "backspace":
		if len(*input) > 0 {
			runes := []rune(*input)
			*input = string(runes[:len(runes)-1])
		}

	default:
		if len(msg.Runes) > 0 {
			*input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m *ReviewModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		scores := make(map[string]int, len(m.categories))
		for i, cat := range m.categories {
			scores[cat] = m.scores[i]
		}
		m.Result = ReviewResult{
			Scores:      scores,
			Wins:        strings.TrimSpace(m.winsInput),
			Adjustments: strings.TrimSpace(m.adjInput),
			Submitted:   true,
		}
		m.quitting = true
		return m, tea.Quit

	case "n", "esc":
		m.step = stepAdjustments

	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *ReviewModel) View() string {
	var b strings.Builder

	header := ui.Title.Render("  " + ui.IconReview + " Weekly Review")
	header += ui.Muted.Render("  week of " + m.weekStart)
	b.WriteString(header + "\n\n")

	switch m.step {
	case stepScores:
		b.WriteString("  " + ui.Subtitle.Render("How did each area of life go this week?") + "\n\n")
		for i, cat := range m.categories {
			b.WriteString(m.renderScoreRow(i, cat) + "\n")
		}
		b.WriteString("\n" + ui.Muted.Render("  j/k move · h/l adjust · 0-9 set · enter next · q quit") + "\n")

	case stepWins:
		b.WriteString("  " + ui.Subtitle.Render("What went well this week?") + "\n\n")
		prompt := lipgloss.NewStyle().Foreground(ui.Emerald).Bold(true).Render("wins:")
		b.WriteString("  " + prompt + " " + m.winsInput + blinkCursor() + "\n")
		b.WriteString("\n" + ui.Muted.Render("  enter next · esc back") + "\n")

	case stepAdjustments:
		b.WriteString("  " + ui.Subtitle.Render("What will you adjust next week?") + "\n\n")
		prompt := lipgloss.NewStyle().Foreground(ui.Amber).Bold(true).Render("adjust:")
		b.WriteString("  " + prompt + " " + m.adjInput + blinkCursor() + "\n")
		b.WriteString("\n" + ui.Muted.Render("  enter next · esc back") + "\n")

	default:
		b.WriteString("  " + ui.Subtitle.Render("Save this review?") + "\n\n")
		for i, cat := range m.categories {
			b.WriteString(fmt.Sprintf("  %-12s %s\n", cat, scoreBar(m.scores[i])))
		}
		if m.winsInput != "" {
			b.WriteString("\n  " + ui.KeyStyle.Render("wins:") + " " + m.winsInput + "\n")
		}
		if m.adjInput != "" {
			b.WriteString("  " + ui.KeyStyle.Render("adjust:") + " " + m.adjInput + "\n")
		}
		b.WriteString("\n" + ui.Muted.Render("  y/enter save · n back · q abandon") + "\n")
	}

	return b.String()
}

func (m *ReviewModel) renderScoreRow(i int, cat string) string {
	pointer := "  "
	nameStyle := lipgloss.NewStyle()
	if i == m.cursor {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		nameStyle = lipgloss.NewStyle().Foreground(ui.Indigo).Bold(true)
	}
	return fmt.Sprintf("  %s%s %s", pointer, nameStyle.Render(fmt.Sprintf("%-12s", cat)), scoreBar(m.scores[i]))
}

// scoreBar renders a 0-10 score as filled blocks with the number alongside.
func scoreBar(score int) string {
	filled := ui.Success.Render(strings.Repeat("■", score))
	empty := ui.Muted.Render(strings.Repeat("□", maxScore-score))
	return fmt.Sprintf("%s%s %2d/10", filled, empty, score)
}

func blinkCursor() string {
	return lipgloss.NewStyle().Foreground(ui.Indigo).Render("▎")
}
