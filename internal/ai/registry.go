package ai

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu        sync.RWMutex
	providers = make(map[string]ProviderFactory)
)

// ProviderFactory creates a provider instance with the given API key.
type ProviderFactory func(apiKey string) (Provider, error)

// Register adds a provider factory to the registry.
func Register(name string, factory ProviderFactory) {
	mu.Lock()
	defer mu.Unlock()
	providers[name] = factory
}

// New returns a configured provider by name. The API key is resolved by the
// caller (environment or keystore).
func New(name, apiKey string) (Provider, error) {
	mu.RLock()
	factory, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (available: %v)", name, Names())
	}
	return factory(apiKey)
}

// Names returns all registered provider names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
