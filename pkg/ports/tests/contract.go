package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/aretw0/piratemap/pkg/ports"
)

// MapLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.MapLoader.
// want maps every name the loader is expected to serve to its parsed form.
func MapLoaderContractTest(t *testing.T, loader ports.MapLoader, want map[string]domain.TreasureMap) {
	t.Helper()
	ctx := context.Background()

	// 1. Test Load (Success)
	t.Run("Load_Success", func(t *testing.T) {
		for name, expected := range want {
			got, err := loader.Load(ctx, name)
			if err != nil {
				t.Fatalf("unexpected error loading map %s: %v", name, err)
			}
			if got.Start != expected.Start {
				t.Errorf("start mismatch for %s. got %v, want %v", name, got.Start, expected.Start)
			}
			if len(got.Waypoints) != len(expected.Waypoints) {
				t.Fatalf("waypoint count mismatch for %s. got %d, want %d", name, len(got.Waypoints), len(expected.Waypoints))
			}
			for i := range got.Waypoints {
				if got.Waypoints[i] != expected.Waypoints[i] {
					t.Errorf("waypoint %d mismatch for %s. got %+v, want %+v", i, name, got.Waypoints[i], expected.Waypoints[i])
				}
			}
		}
	})

	// 2. Test Load (NotFound)
	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-map")
		if !errors.Is(err, domain.ErrMapNotFound) {
			t.Errorf("expected ErrMapNotFound, got %v", err)
		}
	})

	// 3. Test List, when supported
	lister, ok := loader.(ports.Lister)
	if !ok {
		return
	}
	t.Run("List", func(t *testing.T) {
		names, err := lister.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing maps: %v", err)
		}

		lookup := make(map[string]bool)
		for _, name := range names {
			lookup[name] = true
		}
		for name := range want {
			if !lookup[name] {
				t.Errorf("map %s missing from list", name)
			}
		}
	})
}

// RenderCacheContractTest verifies the behaviour every ports.RenderCache must share.
func RenderCacheContractTest(t *testing.T, cache ports.RenderCache) {
	t.Helper()
	ctx := context.Background()
	key := "contract-key"

	// 1. Get missing key
	if _, err := cache.Get(ctx, key); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}

	// 2. Set then Get
	rendered := "1..\n. .\n..x.2"
	if err := cache.Set(ctx, key, rendered); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if got != rendered {
		t.Errorf("expected %q, got %q", rendered, got)
	}

	// 3. Overwrite
	if err := cache.Set(ctx, key, "x"); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}
	if got, _ := cache.Get(ctx, key); got != "x" {
		t.Errorf("expected overwritten value, got %q", got)
	}

	// 4. Delete, twice
	if err := cache.Delete(ctx, key); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
	if _, err := cache.Get(ctx, key); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss after delete, got %v", err)
	}
}
