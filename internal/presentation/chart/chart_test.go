package chart

import (
	"testing"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walk(start domain.Coordinate, wps ...domain.Waypoint) domain.TreasureMap {
	return domain.TreasureMap{Start: start, Waypoints: wps}
}

func wp(h domain.Heading, steps int) domain.Waypoint {
	return domain.Waypoint{Heading: h, Steps: steps}
}

var (
	squareFromOrigin = walk(domain.C(0, 0), wp(domain.East, 2), wp(domain.South, 2), wp(domain.West, 2), wp(domain.North, 2))
	squareFromSide   = walk(domain.C(2, 4), wp(domain.West, 2), wp(domain.South, 2), wp(domain.East, 2), wp(domain.North, 2))
)

func TestRender_TwoSquares(t *testing.T) {
	got, err := Render(squareFromOrigin, squareFromSide)
	require.NoError(t, err)

	want := "1..\n" +
		". .\n" +
		"..x.2\n" +
		"  . .\n" +
		"  ..."
	assert.Equal(t, want, got)
}

func TestCompose_Metadata(t *testing.T) {
	c, err := Compose(squareFromOrigin, squareFromSide)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Rows())
	assert.Equal(t, 6, c.Cols())
	assert.Equal(t, domain.C(2, 2), c.Treasure)
	assert.Equal(t, domain.C(0, 0), c.Offset)

	r, err := c.At(domain.C(2, 4))
	require.NoError(t, err)
	assert.Equal(t, Start2, r)

	cells := c.Cells()
	cells[0][0] = 'z'
	r, _ = c.At(domain.C(0, 0))
	assert.Equal(t, Start1, r, "Cells must return a copy")
}

func TestRender_SharedStart(t *testing.T) {
	m1 := walk(domain.C(0, 0), wp(domain.East, 2))
	m2 := walk(domain.C(0, 0), wp(domain.South, 1), wp(domain.East, 2), wp(domain.North, 1))

	got, err := Render(m1, m2)
	require.NoError(t, err)
	assert.Equal(t, "3x.\n...", got)
}

func TestRender_TreasureOverridesStart(t *testing.T) {
	m1 := walk(domain.C(0, 0), wp(domain.East, 4))
	m2 := walk(domain.C(0, 2), wp(domain.South, 2))

	got, err := Render(m1, m2)
	require.NoError(t, err)
	assert.Equal(t, "1.x..\n  .\n  .", got)
}

func TestRender_StartBeatsTrail(t *testing.T) {
	// The second walk crosses the first start and later reaches the far end.
	m1 := walk(domain.C(0, 0), wp(domain.East, 4))
	m2 := walk(domain.C(1, 0), wp(domain.North, 1), wp(domain.South, 1), wp(domain.East, 4), wp(domain.North, 1))

	got, err := Render(m1, m2)
	require.NoError(t, err)
	assert.Equal(t, "1.x..\n2....", got)
}

func TestRender_NormalizesFirstPath(t *testing.T) {
	m1 := walk(domain.C(10, 10), wp(domain.West, 2))
	m2 := walk(domain.C(0, 1), wp(domain.South, 1))

	got, err := Render(m1, m2)
	require.NoError(t, err)
	// Path1 becomes (0,2),(0,1),(0,0); the crossing is (0,1).
	assert.Equal(t, ".x1\n .", got)
}

func TestRender_Indeterminate(t *testing.T) {
	_, err := Render(squareFromOrigin, walk(domain.C(5, 5), wp(domain.East, 1)))
	assert.ErrorIs(t, err, domain.ErrIndeterminateTreasure)
	assert.True(t, IsRenderError(err))

	_, err = Render(squareFromOrigin, squareFromOrigin)
	assert.ErrorIs(t, err, domain.ErrIndeterminateTreasure)
}

func TestRender_OutOfCanvas(t *testing.T) {
	m1 := walk(domain.C(0, 0), wp(domain.East, 1))
	m2 := walk(domain.C(0, 1), wp(domain.North, 3))

	_, err := Render(m1, m2)
	assert.ErrorIs(t, err, domain.ErrOutOfCanvas)
	assert.True(t, IsRenderError(err))
}

func TestString_TrimsAndJoins(t *testing.T) {
	c := &Chart{cells: [][]rune{[]rune("1.   "), []rune("     "), []rune(" x")}}
	assert.Equal(t, "1.\n\n x", c.String())
}
