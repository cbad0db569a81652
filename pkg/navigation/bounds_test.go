package navigation

import (
	"testing"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/stretchr/testify/assert"
)

var square = domain.Path{c(2, 4), c(2, 3), c(2, 2), c(3, 2), c(4, 2), c(4, 3), c(4, 4), c(3, 4), c(2, 4)}

func TestBoundingBox(t *testing.T) {
	w, h := BoundingBox(square)
	assert.Equal(t, 3, w)
	assert.Equal(t, 3, h)

	w, h = BoundingBox(domain.Path{c(5, 5)})
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	w, h = BoundingBox(domain.Path{c(0, 0), c(0, 1), c(0, 2), c(0, 3)})
	assert.Equal(t, 4, w)
	assert.Equal(t, 1, h)
}

func TestNormalize(t *testing.T) {
	offset, shifted := Normalize(square)

	assert.Equal(t, c(2, 2), offset)
	assert.Equal(t, domain.Path{c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2), c(1, 2), c(0, 2)}, shifted)
	assert.Equal(t, c(2, 4), square[0], "input must not be modified")
}

func TestNormalize_MinimumIsOrigin(t *testing.T) {
	paths := []domain.Path{
		square,
		Trace(c(0, 11), []domain.Waypoint{{Heading: domain.West, Steps: 5}, {Heading: domain.West, Steps: 6}, {Heading: domain.South, Steps: 7}, {Heading: domain.East, Steps: 3}, {Heading: domain.North, Steps: 9}}),
		{c(-4, 9), c(-3, 9), c(-3, 8)},
	}

	for _, p := range paths {
		offset, shifted := Normalize(p)
		lo, _ := Extent(shifted)
		assert.Equal(t, c(0, 0), lo)
		assert.Len(t, shifted, len(p))

		w1, h1 := BoundingBox(p)
		w2, h2 := BoundingBox(shifted)
		assert.Equal(t, w1, w2)
		assert.Equal(t, h1, h2)
		assert.Equal(t, p[0], shifted[0].Add(offset.Row, offset.Col))
	}
}

func TestNormalize_OffsetNotVisited(t *testing.T) {
	offset, _ := Normalize(domain.Path{c(1, 0), c(0, 1)})
	assert.Equal(t, c(0, 0), offset)
}

func TestNormalize_Empty(t *testing.T) {
	offset, shifted := Normalize(nil)
	assert.Equal(t, c(0, 0), offset)
	assert.Empty(t, shifted)
}
