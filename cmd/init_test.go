package cmd

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/alignhq/align/internal/ai"
	"github.com/alignhq/align/internal/config"
)

// initTestEnv isolates XDG dirs and blanks out any provider API keys so the
// detection path is deterministic.
func initTestEnv(t *testing.T) {
	t.Helper()
	configTestEnv(t)
	t.Setenv(ai.EnvGeminiKey, "")
	t.Setenv(ai.EnvClaudeKey, "")
}

func initReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestRunInit_WritesConfigAndDatabase(t *testing.T) {
	initTestEnv(t)

	// Name, then decline AI setup.
	out := captureStdout(t, func() {
		if err := runInitWithReader(initReader("Casey\nn\n")); err != nil {
			t.Fatalf("init: %v", err)
		}
	})
	if !strings.Contains(out, "Casey") {
		t.Errorf("output does not greet the user: %q", out)
	}

	if !config.Initialized() {
		t.Fatal("config file was not written")
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.User.Name != "Casey" {
		t.Errorf("user.name = %q, want Casey", cfg.User.Name)
	}
	if cfg.AI.Provider != "gemini" {
		t.Errorf("ai.provider = %q, want default gemini", cfg.AI.Provider)
	}
	if cfg.AI.Model != config.DefaultModel {
		t.Errorf("ai.model = %q, want %q", cfg.AI.Model, config.DefaultModel)
	}
	if !cfg.Coach.JournalAllowed() {
		t.Error("coach.include_journal should default to true")
	}

	if _, err := os.Stat(config.GetPaths().DBFile); err != nil {
		t.Errorf("database was not created: %v", err)
	}
}

func TestRunInit_DetectsEnvKey(t *testing.T) {
	initTestEnv(t)
	t.Setenv(ai.EnvClaudeKey, "sk-ant-test")

	if err := runInitWithReader(initReader("Casey\n")); err != nil {
		t.Fatalf("init: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.Provider != "claude" {
		t.Errorf("ai.provider = %q, want claude from env detection", cfg.AI.Provider)
	}
}

func TestRunInit_ChoosesAmongMultipleKeys(t *testing.T) {
	initTestEnv(t)
	t.Setenv(ai.EnvGeminiKey, "g-test")
	t.Setenv(ai.EnvClaudeKey, "sk-ant-test")

	if err := runInitWithReader(initReader("Casey\nclaude\n")); err != nil {
		t.Fatalf("init: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.Provider != "claude" {
		t.Errorf("ai.provider = %q, want claude", cfg.AI.Provider)
	}
}

func TestGuessName_NeverPanics(t *testing.T) {
	// Whatever the host environment, this must return without panicking.
	_ = guessName()
}

func TestPrompt_FallbackOnEmptyInput(t *testing.T) {
	got := captureStdout(t, func() {
		if name := prompt(initReader("\n"), "Name?", "fallback"); name != "fallback" {
			t.Errorf("prompt = %q, want fallback", name)
		}
	})
	if !strings.Contains(got, "Name?") {
		t.Errorf("prompt text not printed: %q", got)
	}
}
