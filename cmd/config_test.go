package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/alignhq/align/internal/config"
)

// configTestEnv points every XDG dir at a temp location so tests never touch
// the real config or database.
func configTestEnv(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/config")
	t.Setenv("XDG_DATA_HOME", tmpDir+"/data")
	t.Setenv("XDG_CACHE_HOME", tmpDir+"/cache")
	t.Setenv("XDG_STATE_HOME", tmpDir+"/state")
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = old
		r.Close()
	}()

	fn()

	w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("io.Copy: %v", err)
	}
	return buf.String()
}

func TestConfigGet_KnownKey(t *testing.T) {
	configTestEnv(t)

	cfg := &config.Config{
		AI: config.AIConfig{Provider: "claude", Model: "claude-sonnet-4-5-20250929"},
	}
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := captureStdout(t, func() {
		if err := configGetCmd.RunE(configGetCmd, []string{"ai.provider"}); err != nil {
			t.Errorf("config get: %v", err)
		}
	})
	if strings.TrimSpace(out) != "claude" {
		t.Errorf("output = %q, want claude", out)
	}
}

func TestConfigGet_UnknownKey(t *testing.T) {
	configTestEnv(t)

	err := configGetCmd.RunE(configGetCmd, []string{"nope.nothing"})
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("error = %v, want unknown config key", err)
	}
}

func TestConfigSet_RoundTrip(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := configSetCmd.RunE(configSetCmd, []string{"user.name", "Riley"}); err != nil {
			t.Fatalf("config set: %v", err)
		}
	})
	if !strings.Contains(out, "Riley") {
		t.Errorf("output %q does not confirm the new value", out)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.User.Name != "Riley" {
		t.Errorf("user.name = %q, want Riley", cfg.User.Name)
	}
}

func TestConfigSet_InvalidBool(t *testing.T) {
	configTestEnv(t)

	err := configSetCmd.RunE(configSetCmd, []string{"coach.include_journal", "maybe"})
	if err == nil {
		t.Fatal("expected error for non-boolean value")
	}
}

func TestConfigSet_InvalidHistoryDays(t *testing.T) {
	configTestEnv(t)

	err := configSetCmd.RunE(configSetCmd, []string{"track.history_days", "-3"})
	if err == nil {
		t.Fatal("expected error for negative history window")
	}
}

func TestConfigUnset_RestoresDefault(t *testing.T) {
	configTestEnv(t)

	if err := configSetCmd.RunE(configSetCmd, []string{"track.history_days", "21"}); err != nil {
		t.Fatalf("config set: %v", err)
	}
	if err := configUnsetCmd.RunE(configUnsetCmd, []string{"track.history_days"}); err != nil {
		t.Fatalf("config unset: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Track.HistoryWindow(); got != config.DefaultHistoryDays {
		t.Errorf("history window = %d, want default %d", got, config.DefaultHistoryDays)
	}
}

func TestConfigShow_ListsAllKeys(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := runConfigShow(nil, nil); err != nil {
			t.Errorf("config show: %v", err)
		}
	})
	for _, key := range config.ValidKeyNames() {
		if !strings.Contains(out, key) {
			t.Errorf("output missing key %q", key)
		}
	}
}

func TestConfigPath_PrintsDirs(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := configPathCmd.RunE(configPathCmd, nil); err != nil {
			t.Errorf("config path: %v", err)
		}
	})
	if !strings.Contains(out, "align") {
		t.Errorf("output %q does not mention the align dirs", out)
	}
}
