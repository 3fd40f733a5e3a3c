package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestXDG(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	return tmpDir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	setupTestXDG(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.AI.Provider)
	}
	if cfg.AI.Model != DefaultModel {
		t.Errorf("default model = %q, want %q", cfg.AI.Model, DefaultModel)
	}
	if !cfg.Coach.JournalAllowed() {
		t.Error("journal should be allowed by default")
	}
	if cfg.Track.HistoryWindow() != DefaultHistoryDays {
		t.Errorf("history window = %d, want %d", cfg.Track.HistoryWindow(), DefaultHistoryDays)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	setupTestXDG(t)

	cfg := &Config{
		User:  UserConfig{Name: "Ada"},
		AI:    AIConfig{Provider: "claude", Model: "claude-sonnet-4-5"},
		Coach: CoachConfig{IncludeJournal: BoolPtr(false)},
		Track: TrackConfig{HistoryDays: 14},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.User.Name != "Ada" {
		t.Errorf("name = %q, want Ada", loaded.User.Name)
	}
	if loaded.AI.Provider != "claude" {
		t.Errorf("provider = %q, want claude", loaded.AI.Provider)
	}
	if loaded.Coach.JournalAllowed() {
		t.Error("journal opt-out not persisted")
	}
	if loaded.Track.HistoryWindow() != 14 {
		t.Errorf("history window = %d, want 14", loaded.Track.HistoryWindow())
	}
}

func TestInitialized(t *testing.T) {
	setupTestXDG(t)

	if Initialized() {
		t.Error("Initialized true before first save")
	}
	if err := Save(&Config{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Initialized() {
		t.Error("Initialized false after save")
	}

	paths := GetPaths()
	if _, err := os.Stat(paths.ConfigFile); err != nil {
		t.Errorf("config file missing: %v", err)
	}
}

func TestJournalAllowed_NilMeansTrue(t *testing.T) {
	var c CoachConfig
	if !c.JournalAllowed() {
		t.Error("nil IncludeJournal should mean allowed")
	}
}

func TestSchemaKeys_SetAndUnset(t *testing.T) {
	cfg := &Config{}

	entry, ok := LookupKey("track.history_days")
	if !ok {
		t.Fatal("track.history_days not registered")
	}
	if err := entry.Set(cfg, "10"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if cfg.Track.HistoryDays != 10 {
		t.Errorf("HistoryDays = %d, want 10", cfg.Track.HistoryDays)
	}
	if err := entry.Set(cfg, "zero"); err == nil {
		t.Error("expected error for non-integer value")
	}
	if err := entry.Set(cfg, "-3"); err == nil {
		t.Error("expected error for negative value")
	}
	entry.Unset(cfg)
	if cfg.Track.HistoryDays != 0 {
		t.Errorf("HistoryDays after unset = %d, want 0", cfg.Track.HistoryDays)
	}

	boolEntry, ok := LookupKey("coach.include_journal")
	if !ok {
		t.Fatal("coach.include_journal not registered")
	}
	if err := boolEntry.Set(cfg, "off"); err != nil {
		t.Fatalf("Set bool: %v", err)
	}
	if cfg.Coach.JournalAllowed() {
		t.Error("include_journal should be off")
	}
}

func TestParseBoolValue(t *testing.T) {
	truthy := []string{"true", "1", "yes", "on", " TRUE "}
	for _, v := range truthy {
		b, err := ParseBoolValue(v)
		if err != nil || !b {
			t.Errorf("ParseBoolValue(%q) = %v, %v; want true, nil", v, b, err)
		}
	}
	if _, err := ParseBoolValue("maybe"); err == nil {
		t.Error("expected error for ambiguous value")
	}
}
