package cmd

import (
	"strings"
	"testing"

	"github.com/alignhq/align/internal/progress"
)

func TestProgress_Empty(t *testing.T) {
	trackTestEnv(t)
	progressDays = 0

	out := captureStdout(t, func() {
		if err := runProgress(progressCmd, nil); err != nil {
			t.Errorf("progress: %v", err)
		}
	})
	if !strings.Contains(out, "Nothing to report") {
		t.Errorf("output = %q, want empty-state message", out)
	}
}

func TestProgress_ShowsStepAndStreak(t *testing.T) {
	trackTestEnv(t)
	resetActionFlags()
	progressDays = 0
	goalID := addGoalForTest(t, "Become a runner")
	step := addActionForTest(t, goalID, "Run 5km")

	db, ts, err := openTrackStore()
	if err != nil {
		t.Fatal(err)
	}
	today := progress.Today(progress.SystemClock{})
	if err := ts.UpsertLog(step.ID, today, true, 0); err != nil {
		t.Fatal(err)
	}
	db.Close()

	out := captureStdout(t, func() {
		if err := runProgress(progressCmd, nil); err != nil {
			t.Errorf("progress: %v", err)
		}
	})
	if !strings.Contains(out, "Run 5km") {
		t.Errorf("output missing step title: %q", out)
	}
	if !strings.Contains(out, "1 day") {
		t.Errorf("output missing streak: %q", out)
	}
}

func TestProgress_InvalidWindow(t *testing.T) {
	trackTestEnv(t)
	progressDays = -1

	if err := runProgress(progressCmd, nil); err == nil {
		t.Fatal("expected error for negative window")
	}
	progressDays = 0
}

func TestStats_CountsAndBadges(t *testing.T) {
	trackTestEnv(t)
	resetActionFlags()
	goalID := addGoalForTest(t, "Become a runner")
	step := addActionForTest(t, goalID, "Run 5km")

	db, ts, err := openTrackStore()
	if err != nil {
		t.Fatal(err)
	}
	today := progress.Today(progress.SystemClock{})
	if err := ts.UpsertLog(step.ID, today, true, 0); err != nil {
		t.Fatal(err)
	}
	db.Close()

	out := captureStdout(t, func() {
		if err := statsCmd.RunE(statsCmd, nil); err != nil {
			t.Errorf("stats: %v", err)
		}
	})
	if !strings.Contains(out, "First Step") {
		t.Errorf("output missing unlocked badge: %q", out)
	}
	if !strings.Contains(out, "Centurion") {
		t.Errorf("output missing locked badge: %q", out)
	}
}

func TestDashboard_Uninitialized(t *testing.T) {
	trackTestEnv(t)

	out := captureStdout(t, func() {
		if err := runDashboard(nil, nil); err != nil {
			t.Errorf("dashboard: %v", err)
		}
	})
	if !strings.Contains(out, "align init") {
		t.Errorf("output = %q, want pointer to align init", out)
	}
}
