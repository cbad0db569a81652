package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/piratemap/pkg/adapters/file"
	"github.com/aretw0/piratemap/pkg/domain"
)

// Loader implements ports.MapLoader using an in-memory map of text sources.
// Safe for concurrent use.
type Loader struct {
	sources map[string]string
	mu      sync.RWMutex
}

// NewLoader creates a new in-memory loader from raw text-format sources.
func NewLoader(data map[string]string) *Loader {
	sources := make(map[string]string, len(data))
	for k, v := range data {
		sources[k] = v
	}
	return &Loader{sources: sources}
}

// NewFromMaps creates a loader from parsed maps.
// This handles serialization automatically, improving DX for tests.
func NewFromMaps(maps map[string]domain.TreasureMap) *Loader {
	sources := make(map[string]string, len(maps))
	for name, m := range maps {
		sources[name] = file.Format(m)
	}
	return &Loader{sources: sources}
}

// Put registers or replaces a source.
func (l *Loader) Put(name, source string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[name] = source
}

// Load parses the source registered under name.
func (l *Loader) Load(ctx context.Context, name string) (domain.TreasureMap, error) {
	l.mu.RLock()
	src, ok := l.sources[name]
	l.mu.RUnlock()

	if !ok {
		return domain.TreasureMap{}, fmt.Errorf("%w: %s", domain.ErrMapNotFound, name)
	}

	m, err := file.ParseString(src)
	if err != nil {
		return domain.TreasureMap{}, fmt.Errorf("parse map %s: %w", name, err)
	}
	return m, nil
}

// List returns all registered names.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.sources))
	for k := range l.sources {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
