package ports

import (
	"context"

	"github.com/aretw0/piratemap/pkg/domain"
)

// MapLoader defines how the decoder retrieves treasure maps.
// This allows the source (filesystem, memory, request body) to be decoupled.
type MapLoader interface {
	// Load parses the map registered under name.
	// It returns domain.ErrMapNotFound when the name is unknown and a
	// *domain.ParseError when the content is malformed.
	Load(ctx context.Context, name string) (domain.TreasureMap, error)
}

// Lister is implemented by loaders that can enumerate their maps.
type Lister interface {
	// List returns the available map names in deterministic order.
	List(ctx context.Context) ([]string, error)
}
