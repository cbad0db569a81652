package ports

import (
	"context"
)

// RenderCache memoizes rendered maps.
// Keys are opaque digests computed by the decoder from both input maps.
type RenderCache interface {
	// Get returns the cached render.
	// Returns domain.ErrCacheMiss if the key does not exist.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a render under key.
	Set(ctx context.Context, key string, rendered string) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
