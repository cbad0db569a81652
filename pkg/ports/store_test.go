package ports_test

import (
	"context"
	"testing"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/aretw0/piratemap/pkg/ports/tests"
)

// MockCache is a map-backed RenderCache used to exercise the contract suite itself.
type MockCache struct {
	data map[string]string
}

func NewMockCache() *MockCache {
	return &MockCache{data: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (m *MockCache) Set(ctx context.Context, key, rendered string) error {
	m.data[key] = rendered
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestRenderCache_Contract(t *testing.T) {
	tests.RenderCacheContractTest(t, NewMockCache())
}
