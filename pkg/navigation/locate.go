package navigation

import "github.com/aretw0/piratemap/pkg/domain"

// Intersections scans p1 in order and collects each cell that p2 also visits.
// A cell repeated in p1 is collected once per occurrence, so closed or
// self-crossing walks can inflate the count.
func Intersections(p1, p2 domain.Path) []domain.Coordinate {
	visited := make(map[domain.Coordinate]struct{}, len(p2))
	for _, c := range p2 {
		visited[c] = struct{}{}
	}

	var out []domain.Coordinate
	for _, c := range p1 {
		if _, ok := visited[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Locate resolves the treasure from the crossings of two paths.
//
//   - one crossing: that cell.
//   - two crossings: their midpoint, floored on each axis.
//   - anything else: an *domain.IndeterminateError.
func Locate(p1, p2 domain.Path) (domain.Coordinate, error) {
	matches := Intersections(p1, p2)

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 2:
		a, b := matches[0], matches[1]
		return domain.Coordinate{
			Row: floorDiv(a.Row+b.Row, 2),
			Col: floorDiv(a.Col+b.Col, 2),
		}, nil
	default:
		return domain.Coordinate{}, &domain.IndeterminateError{Matches: len(matches)}
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// LocateOnCanvas locates the treasure in the canvas frame used by the chart:
// p1 shifted so its minimum cell is the origin, p2 as traced. It returns the
// canvas treasure and p1's offset; treasure plus offset is the same cell in
// p1's own frame.
func LocateOnCanvas(p1, p2 domain.Path) (treasure, offset domain.Coordinate, err error) {
	offset, shifted := Normalize(p1)
	treasure, err = Locate(shifted, p2)
	if err != nil {
		return domain.Coordinate{}, offset, err
	}
	return treasure, offset, nil
}
