package factory

import (
	"fmt"
	"sync"

	"github.com/indieinfra/imagebin/config"
	"github.com/indieinfra/imagebin/storage/metadata"
)

// Factory builds a metadata store for the provided metadata config.
type Factory func(*config.Metadata) (metadata.Store, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds or replaces a metadata store factory for the given strategy name.
func Register(strategy string, factory Factory) {
	mu.Lock()
	registry[strategy] = factory
	mu.Unlock()
}

// Get retrieves a factory for the given strategy.
func Get(strategy string) (Factory, bool) {
	mu.RLock()
	f, ok := registry[strategy]
	mu.RUnlock()
	return f, ok
}

// Create builds a metadata store using the registered factory for the configured strategy.
func Create(cfg *config.Metadata) (metadata.Store, error) {
	if f, ok := Get(cfg.Strategy); ok {
		return f(cfg)
	}

	return nil, fmt.Errorf("unknown metadata strategy %q", cfg.Strategy)
}

func init() {
	Register("memory", func(cfg *config.Metadata) (metadata.Store, error) {
		return metadata.NewMemoryStore(), nil
	})
	Register("mongo", func(cfg *config.Metadata) (metadata.Store, error) {
		return metadata.NewMongoStore(cfg.Mongo)
	})
}
