// Package chart composes two traced maps and their treasure onto one
// character grid and serializes it as text.
package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/aretw0/piratemap/pkg/navigation"
)

// Markers drawn on the grid.
const (
	Blank     = ' '
	Trail     = '.'
	Start1    = '1'
	Start2    = '2'
	SharedHit = '3'
	Treasure  = 'x'
)

// Chart is a composed two-map grid in the canvas frame, whose origin is the
// minimum coordinate of the first path.
type Chart struct {
	// Offset is the first path's minimum coordinate in its own frame.
	Offset domain.Coordinate
	// Treasure is the located treasure cell in the canvas frame.
	Treasure domain.Coordinate
	// Path1 is the first path after normalization; Path2 is the second path as traced.
	Path1, Path2 domain.Path

	cells [][]rune
}

// Compose traces both maps and draws them.
//
// The grid holds h1+h2-1 rows and w1+w2 columns, where (w, h) are the
// bounding boxes of the two paths. Path cells are drawn first, then the start
// markers, then the treasure, each layer overwriting the one below. A second
// start landing on the first start is drawn as '3'.
func Compose(m1, m2 domain.TreasureMap) (*Chart, error) {
	raw1 := navigation.TraceMap(m1)
	w1, h1 := navigation.BoundingBox(raw1)
	_, path1 := navigation.Normalize(raw1)

	path2 := navigation.TraceMap(m2)
	w2, h2 := navigation.BoundingBox(path2)

	treasure, offset, err := navigation.LocateOnCanvas(raw1, path2)
	if err != nil {
		return nil, err
	}

	c := &Chart{
		Offset:   offset,
		Treasure: treasure,
		Path1:    path1,
		Path2:    path2,
		cells:    newGrid(h1+h2-1, w1+w2),
	}

	for _, p := range []domain.Path{path1, path2} {
		for _, cell := range p {
			if err := c.set(cell, Trail); err != nil {
				return nil, err
			}
		}
	}

	if err := c.set(path1[0], Start1); err != nil {
		return nil, err
	}
	mark := Start2
	if r, _ := c.At(path2[0]); r == Start1 {
		mark = SharedHit
	}
	if err := c.set(path2[0], mark); err != nil {
		return nil, err
	}

	if err := c.set(treasure, Treasure); err != nil {
		return nil, err
	}
	return c, nil
}

// Render composes both maps and serializes the result.
func Render(m1, m2 domain.TreasureMap) (string, error) {
	c, err := Compose(m1, m2)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

func newGrid(rows, cols int) [][]rune {
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = Blank
		}
	}
	return grid
}

// Rows returns the grid height.
func (c *Chart) Rows() int { return len(c.cells) }

// Cols returns the grid width.
func (c *Chart) Cols() int {
	if len(c.cells) == 0 {
		return 0
	}
	return len(c.cells[0])
}

// At returns the marker at cell.
func (c *Chart) At(cell domain.Coordinate) (rune, error) {
	if !c.inside(cell) {
		return Blank, fmt.Errorf("%w: %s in %dx%d grid", domain.ErrOutOfCanvas, cell, c.Rows(), c.Cols())
	}
	return c.cells[cell.Row][cell.Col], nil
}

// Cells returns a copy of the grid, row by row.
func (c *Chart) Cells() [][]rune {
	out := make([][]rune, len(c.cells))
	for i, row := range c.cells {
		out[i] = append([]rune(nil), row...)
	}
	return out
}

// String serializes the grid with trailing blanks trimmed from each row,
// rows joined by '\n' and no newline after the last row.
func (c *Chart) String() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = strings.TrimRight(string(row), string(Blank))
	}
	return strings.Join(lines, "\n")
}

func (c *Chart) inside(cell domain.Coordinate) bool {
	return cell.Row >= 0 && cell.Row < c.Rows() && cell.Col >= 0 && cell.Col < c.Cols()
}

func (c *Chart) set(cell domain.Coordinate, r rune) error {
	if !c.inside(cell) {
		return fmt.Errorf("%w: %s in %dx%d grid", domain.ErrOutOfCanvas, cell, c.Rows(), c.Cols())
	}
	c.cells[cell.Row][cell.Col] = r
	return nil
}

// IsRenderError reports whether err is one of the failures Compose can return.
func IsRenderError(err error) bool {
	return errors.Is(err, domain.ErrIndeterminateTreasure) || errors.Is(err, domain.ErrOutOfCanvas)
}
