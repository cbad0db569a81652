package domain

import "fmt"

// Coordinate is a grid cell. Row grows southward, Col grows eastward.
type Coordinate struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// C is a convenience constructor for Coordinate.
func C(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String returns the coordinate as "(row, col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Add returns c offset by (dRow, dCol).
func (c Coordinate) Add(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Sub returns c translated by -other.
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{Row: c.Row - other.Row, Col: c.Col - other.Col}
}

// Step returns the neighbouring cell one unit toward h.
func (c Coordinate) Step(h Heading) Coordinate {
	return c.Add(h.Delta())
}
