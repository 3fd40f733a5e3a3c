package cmd

import (
	"strings"
	"testing"
)

// trackTestEnv sets up isolated XDG dirs for tracking command tests.
func trackTestEnv(t *testing.T) {
	t.Helper()
	configTestEnv(t)
}

// addGoalForTest creates a goal through the command path and returns its ID.
func addGoalForTest(t *testing.T, title string) string {
	t.Helper()
	goalCategory = "Personal"
	goalColor = ""
	if err := goalAddCmd.RunE(goalAddCmd, []string{title}); err != nil {
		t.Fatalf("goal add: %v", err)
	}

	db, ts, err := openTrackStore()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	goals, err := ts.ListGoals(true)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range goals {
		if g.Title == title {
			return g.ID
		}
	}
	t.Fatalf("goal %q not found after add", title)
	return ""
}

func TestGoalAdd_Basic(t *testing.T) {
	trackTestEnv(t)

	id := addGoalForTest(t, "Become a runner")
	if id == "" {
		t.Fatal("expected a goal ID")
	}

	db, ts, err := openTrackStore()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	g, err := ts.GetGoal(id)
	if err != nil {
		t.Fatal(err)
	}
	if g.Category != "Personal" {
		t.Errorf("category = %q, want Personal", g.Category)
	}
	if g.Archived {
		t.Error("new goal should not be archived")
	}
}

func TestGoalList_Empty(t *testing.T) {
	trackTestEnv(t)
	goalListArchived = false

	out := captureStdout(t, func() {
		if err := runGoalList(nil, nil); err != nil {
			t.Errorf("goal list: %v", err)
		}
	})
	if !strings.Contains(out, "No goals yet") {
		t.Errorf("output = %q, want empty-state message", out)
	}
}

func TestGoalList_ShowsTitles(t *testing.T) {
	trackTestEnv(t)
	addGoalForTest(t, "Become a runner")
	addGoalForTest(t, "Become a reader")
	goalListArchived = false

	out := captureStdout(t, func() {
		if err := runGoalList(nil, nil); err != nil {
			t.Errorf("goal list: %v", err)
		}
	})
	if !strings.Contains(out, "Become a runner") || !strings.Contains(out, "Become a reader") {
		t.Errorf("output missing goal titles: %q", out)
	}
}

func TestGoalArchive_HiddenFromDefaultList(t *testing.T) {
	trackTestEnv(t)
	// Title must not collide with the empty-state tip text, which quotes a
	// sample goal.
	id := addGoalForTest(t, "Become a swimmer")

	if err := goalArchiveCmd.RunE(goalArchiveCmd, []string{id}); err != nil {
		t.Fatalf("goal archive: %v", err)
	}

	goalListArchived = false
	out := captureStdout(t, func() {
		if err := runGoalList(nil, nil); err != nil {
			t.Errorf("goal list: %v", err)
		}
	})
	if strings.Contains(out, "Become a swimmer") {
		t.Error("archived goal should not appear in the default list")
	}

	goalListArchived = true
	out = captureStdout(t, func() {
		if err := runGoalList(nil, nil); err != nil {
			t.Errorf("goal list --all: %v", err)
		}
	})
	if !strings.Contains(out, "Become a swimmer") {
		t.Error("archived goal should appear with --all")
	}
}

func TestGoalDelete_RemovesGoal(t *testing.T) {
	trackTestEnv(t)
	id := addGoalForTest(t, "Become a runner")

	if err := goalDeleteCmd.RunE(goalDeleteCmd, []string{id}); err != nil {
		t.Fatalf("goal delete: %v", err)
	}

	db, ts, err := openTrackStore()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := ts.GetGoal(id); err == nil {
		t.Error("expected lookup error after delete")
	}
}

func TestGoalShow_PrefixLookup(t *testing.T) {
	trackTestEnv(t)
	id := addGoalForTest(t, "Become a runner")

	out := captureStdout(t, func() {
		if err := goalShowCmd.RunE(goalShowCmd, []string{id[:8]}); err != nil {
			t.Errorf("goal show: %v", err)
		}
	})
	if !strings.Contains(out, "Become a runner") {
		t.Errorf("output missing goal title: %q", out)
	}
}

func TestGoalCategories_SeededDefaults(t *testing.T) {
	trackTestEnv(t)
	// Opening the store seeds the default category set.
	addGoalForTest(t, "Become a runner")

	out := captureStdout(t, func() {
		if err := goalCategoriesCmd.RunE(goalCategoriesCmd, nil); err != nil {
			t.Errorf("goal categories: %v", err)
		}
	})
	for _, want := range []string{"Faith", "Career", "Health", "Learning", "Personal"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing seeded category %q", want)
		}
	}
}
