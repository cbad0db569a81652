package navigation

import "github.com/aretw0/piratemap/pkg/domain"

// Extent returns the component-wise minimum and maximum of path.
// Both are the zero Coordinate for an empty path.
func Extent(path domain.Path) (lo, hi domain.Coordinate) {
	if len(path) == 0 {
		return domain.Coordinate{}, domain.Coordinate{}
	}

	lo, hi = path[0], path[0]
	for _, c := range path[1:] {
		lo.Row = min(lo.Row, c.Row)
		lo.Col = min(lo.Col, c.Col)
		hi.Row = max(hi.Row, c.Row)
		hi.Col = max(hi.Col, c.Col)
	}
	return lo, hi
}

// BoundingBox returns the inclusive column span (width) and row span (height).
// A non-empty path always measures at least 1x1.
func BoundingBox(path domain.Path) (width, height int) {
	if len(path) == 0 {
		return 0, 0
	}
	lo, hi := Extent(path)
	return hi.Col - lo.Col + 1, hi.Row - lo.Row + 1
}

// Normalize translates path so its component-wise minimum becomes (0, 0).
// The offset is that minimum, which need not be a visited cell.
// Order and length are preserved and the input is not modified.
func Normalize(path domain.Path) (offset domain.Coordinate, shifted domain.Path) {
	offset, _ = Extent(path)

	shifted = make(domain.Path, len(path))
	for i, c := range path {
		shifted[i] = c.Sub(offset)
	}
	return offset, shifted
}
