package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeInt    KeyType = "int"
	KeyTypeBool   KeyType = "bool"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	Type KeyType
	// Desc is shown in `align config list`.
	Desc string
	// DefaultStr is the string representation of the default value.
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// SchemaKeys is the authoritative registry of all settable config keys.
// Keys use dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:       KeyTypeString,
		Desc:       "Display name used in greetings and coach prompts",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.User.Name },
		set:        func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset:      func(cfg *Config) { cfg.User.Name = "" },
	},
	"ai.provider": {
		Type:       KeyTypeString,
		Desc:       "Coach AI provider (gemini, claude)",
		DefaultStr: "gemini",
		get:        func(cfg *Config) string { return cfg.AI.Provider },
		set:        func(cfg *Config, v string) error { cfg.AI.Provider = v; return nil },
		unset:      func(cfg *Config) { cfg.AI.Provider = "gemini" },
	},
	"ai.model": {
		Type:       KeyTypeString,
		Desc:       "Coach model name",
		DefaultStr: DefaultModel,
		get:        func(cfg *Config) string { return cfg.AI.Model },
		set:        func(cfg *Config, v string) error { cfg.AI.Model = v; return nil },
		unset:      func(cfg *Config) { cfg.AI.Model = DefaultModel },
	},
	"coach.include_journal": {
		Type:       KeyTypeBool,
		Desc:       "Allow journal text in coach prompts",
		DefaultStr: "true",
		get:        func(cfg *Config) string { return fmt.Sprintf("%t", cfg.Coach.JournalAllowed()) },
		set: func(cfg *Config, v string) error {
			b, err := ParseBoolValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for coach.include_journal: %w", v, err)
			}
			cfg.Coach.IncludeJournal = BoolPtr(b)
			return nil
		},
		unset: func(cfg *Config) { cfg.Coach.IncludeJournal = BoolPtr(true) },
	},
	"track.history_days": {
		Type:       KeyTypeInt,
		Desc:       "Width of the recent-history strip",
		DefaultStr: strconv.Itoa(DefaultHistoryDays),
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.Track.HistoryWindow()) },
		set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 1 {
				return fmt.Errorf("invalid value %q for track.history_days: expected a positive integer", v)
			}
			cfg.Track.HistoryDays = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Track.HistoryDays = 0 },
	},
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

// ParseBoolValue accepts common boolean string representations.
// Valid truthy values: true, 1, yes, on.
// Valid falsy values: false, 0, no, off.
func ParseBoolValue(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q (use one of: true/false, 1/0, yes/no, on/off)", s)
	}
}
