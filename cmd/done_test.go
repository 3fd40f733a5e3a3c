package cmd

import (
	"strings"
	"testing"

	"github.com/alignhq/align/internal/progress"
)

func resetDoneFlags() {
	doneDate = ""
	doneUndo = false
}

func TestDone_BooleanToday(t *testing.T) {
	trackTestEnv(t)
	resetActionFlags()
	resetDoneFlags()
	goalID := addGoalForTest(t, "Become a runner")
	step := addActionForTest(t, goalID, "Run 5km")

	if err := runDone(nil, []string{step.ID[:8]}); err != nil {
		t.Fatalf("done: %v", err)
	}

	db, ts, err := openTrackStore()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	today := progress.Today(progress.SystemClock{})
	log, err := ts.LogFor(step.ID, today)
	if err != nil {
		t.Fatal(err)
	}
	if log == nil || !log.IsComplete {
		t.Fatal("expected a completed log for today")
	}
}

func TestDone_NumericRequiresValue(t *testing.T) {
	trackTestEnv(t)
	resetActionFlags()
	resetDoneFlags()
	goalID := addGoalForTest(t, "Become a reader")

	actionType = "numeric"
	actionTarget = 20
	step := addActionForTest(t, goalID, "Read pages")

	err := runDone(nil, []string{step.ID})
	if err == nil {
		t.Fatal("expected error when logging a numeric step without a value")
	}
}

func TestDone_NumericValue(t *testing.T) {
	trackTestEnv(t)
	resetActionFlags()
	resetDoneFlags()
	goalID := addGoalForTest(t, "Become a reader")

	actionType = "numeric"
	actionTarget = 20
	step := addActionForTest(t, goalID, "Read pages")

	if err := runDone(nil, []string{step.ID, "12.5"}); err != nil {
		t.Fatalf("done: %v", err)
	}

	db, ts, err := openTrackStore()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	today := progress.Today(progress.SystemClock{})
	log, err := ts.LogFor(step.ID, today)
	if err != nil {
		t.Fatal(err)
	}
	if log == nil || log.NumericValue != 12.5 {
		t.Fatalf("log = %+v, want numeric value 12.5", log)
	}
}

func TestDone_BooleanRejectsValue(t *testing.T) {
	trackTestEnv(t)
	resetActionFlags()
	resetDoneFlags()
	goalID := addGoalForTest(t, "Become a runner")
	step := addActionForTest(t, goalID, "Run 5km")

	err := runDone(nil, []string{step.ID, "5"})
	if err == nil {
		t.Fatal("expected error when passing a value to a checkbox step")
	}
	if !strings.Contains(err.Error(), "takes no value") {
		t.Errorf("error = %v", err)
	}
}

func TestDone_BackfillDate(t *testing.T) {
	trackTestEnv(t)
	resetActionFlags()
	resetDoneFlags()
	goalID := addGoalForTest(t, "Become a runner")
	step := addActionForTest(t, goalID, "Run 5km")

	doneDate = "2026-03-01"
	if err := runDone(nil, []string{step.ID}); err != nil {
		t.Fatalf("done --date: %v", err)
	}

	db, ts, err := openTrackStore()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	log, err := ts.LogFor(step.ID, "2026-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if log == nil || !log.IsComplete {
		t.Fatal("expected a completed log for the backfilled date")
	}
}

func TestDone_InvalidDate(t *testing.T) {
	trackTestEnv(t)
	resetDoneFlags()
	doneDate = "March 1st"

	err := runDone(nil, []string{"whatever"})
	if err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestDone_Undo(t *testing.T) {
	trackTestEnv(t)
	resetActionFlags()
	resetDoneFlags()
	goalID := addGoalForTest(t, "Become a runner")
	step := addActionForTest(t, goalID, "Run 5km")

	if err := runDone(nil, []string{step.ID}); err != nil {
		t.Fatalf("done: %v", err)
	}

	doneUndo = true
	if err := runDone(nil, []string{step.ID}); err != nil {
		t.Fatalf("done --undo: %v", err)
	}

	db, ts, err := openTrackStore()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	today := progress.Today(progress.SystemClock{})
	log, err := ts.LogFor(step.ID, today)
	if err != nil {
		t.Fatal(err)
	}
	if log != nil {
		t.Fatalf("log = %+v, want nil after undo", log)
	}
}
