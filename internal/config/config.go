package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultModel is the coach model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultHistoryDays is the width of the recent-history strip.
const DefaultHistoryDays = 7

// Config holds the top-level align configuration.
type Config struct {
	User  UserConfig  `toml:"user"`
	AI    AIConfig    `toml:"ai"`
	Coach CoachConfig `toml:"coach"`
	Track TrackConfig `toml:"track"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

type AIConfig struct {
	Provider string `toml:"provider"` // gemini, claude
	Model    string `toml:"model"`
}

// CoachConfig controls what context the AI coach is allowed to see.
type CoachConfig struct {
	// IncludeJournal controls whether journal text is sent to the coach.
	// Defaults to true when not set in config (opt-out model).
	IncludeJournal *bool `toml:"include_journal,omitempty"`
}

// JournalAllowed returns whether journal entries may be included in coach
// prompts. Treats nil (missing from config) as true.
func (c CoachConfig) JournalAllowed() bool {
	if c.IncludeJournal == nil {
		return true
	}
	return *c.IncludeJournal
}

type TrackConfig struct {
	// HistoryDays is the recent-history window width. 0 means the default (7).
	HistoryDays int `toml:"history_days,omitempty"`
}

// HistoryWindow returns the configured history width, defaulting to 7.
func (t TrackConfig) HistoryWindow() int {
	if t.HistoryDays <= 0 {
		return DefaultHistoryDays
	}
	return t.HistoryDays
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	StateDir   string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	alignConfig := filepath.Join(configDir, "align")
	alignData := filepath.Join(dataDir, "align")

	return Paths{
		ConfigDir:  alignConfig,
		DataDir:    alignData,
		StateDir:   filepath.Join(stateDir, "align"),
		ConfigFile: filepath.Join(alignConfig, "config.toml"),
		DBFile:     filepath.Join(alignData, "align.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	dirs := []string{p.ConfigDir, p.DataDir, p.StateDir}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := &Config{}

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if align has been set up.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

func defaultConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider: "gemini",
			Model:    DefaultModel,
		},
		Coach: CoachConfig{
			IncludeJournal: BoolPtr(true),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
