package ai

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alignhq/align/internal/config"
)

const (
	// EnvGeminiKey is the environment variable for the Gemini API key.
	EnvGeminiKey = "GEMINI_API_KEY"
	// EnvClaudeKey is the environment variable for the Claude API key.
	EnvClaudeKey = "ANTHROPIC_API_KEY"
)

// KeyStore manages API key storage. Keys live in a JSON file with 0600
// permissions in the config directory; environment variables take
// precedence.
type KeyStore struct {
	path string
	keys map[string]string
}

// NewKeyStore creates a KeyStore rooted in the config directory.
func NewKeyStore() *KeyStore {
	paths := config.GetPaths()
	return &KeyStore{
		path: filepath.Join(paths.ConfigDir, "keys.json"),
		keys: make(map[string]string),
	}
}

// Load reads keys from disk. A missing file is not an error.
func (ks *KeyStore) Load() error {
	data, err := os.ReadFile(ks.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading keys: %w", err)
	}

	if err := json.Unmarshal(data, &ks.keys); err != nil {
		return fmt.Errorf("parsing keys: %w", err)
	}
	return nil
}

// Save writes keys to disk with restricted permissions.
func (ks *KeyStore) Save() error {
	paths := config.GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(ks.keys, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding keys: %w", err)
	}

	if err := os.WriteFile(ks.path, data, 0o600); err != nil {
		return fmt.Errorf("writing keys: %w", err)
	}
	// The file may predate this write with a looser mode.
	if err := os.Chmod(ks.path, 0o600); err != nil {
		return fmt.Errorf("setting key file permissions: %w", err)
	}
	return nil
}

// Get retrieves an API key for the given provider, checking environment
// variables first, then the key store.
func (ks *KeyStore) Get(provider string) (string, error) {
	envKey := envKeyForProvider(provider)
	if envKey != "" {
		if key := os.Getenv(envKey); key != "" {
			return key, nil
		}
	}

	key, ok := ks.keys[provider]
	if !ok || key == "" {
		return "", &ProviderError{
			Provider: provider,
			Message:  fmt.Sprintf("API key not found (set %s or run `align config set-key %s`)", envKey, provider),
		}
	}
	return key, nil
}

// Set stores an API key for the given provider.
func (ks *KeyStore) Set(provider, key string) {
	ks.keys[provider] = key
}

// Delete removes an API key for the given provider.
func (ks *KeyStore) Delete(provider string) {
	delete(ks.keys, provider)
}

func envKeyForProvider(provider string) string {
	switch provider {
	case "gemini":
		return EnvGeminiKey
	case "claude":
		return EnvClaudeKey
	default:
		return ""
	}
}
