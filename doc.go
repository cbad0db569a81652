/*
Package piratemap decodes pairs of pirate treasure maps.

Each map lists a start cell followed by movement records. A record turns the
walker clockwise by a multiple of 90 degrees, relative to where it was facing,
and then walks a number of cells. Two walks are traced, drawn onto one grid and
the treasure is deduced from where they cross: a single crossing marks the
spot, two crossings put it halfway between them, anything else leaves it
undetermined.

# Usage

	dec := piratemap.New("./maps")

	rendered, err := dec.Decode(ctx, "treasure_1.txt", "treasure_2.txt")
	if err != nil {
		if errors.Is(err, domain.ErrIndeterminateTreasure) {
			// The walks do not pin down a single cell.
		}
		return err
	}
	fmt.Println(rendered)

The rendered grid marks walked cells with '.', the first start with '1', the
second with '2' (or '3' when both starts coincide) and the treasure with 'x'.

# Architecture

The package follows a hexagonal layout: pkg/domain holds the models,
pkg/navigation the pure pipeline steps, pkg/ports the interfaces for map
sources and render caches, and pkg/adapters their implementations (files,
memory, Redis, HTTP and MCP).
*/
package piratemap
