package navigation

import "github.com/aretw0/piratemap/pkg/domain"

// Trace walks waypoints from start and returns every visited cell.
// The result begins with start and holds 1 + sum(steps) cells.
// Coordinates are not bounded and may go negative.
func Trace(start domain.Coordinate, waypoints []domain.Waypoint) domain.Path {
	total := 1
	for _, wp := range waypoints {
		if wp.Steps > 0 {
			total += wp.Steps
		}
	}

	path := make(domain.Path, 0, total)
	path = append(path, start)

	pos := start
	for _, wp := range waypoints {
		for i := 0; i < wp.Steps; i++ {
			pos = pos.Step(wp.Heading)
			path = append(path, pos)
		}
	}
	return path
}

// TraceMap traces a parsed map from its own start.
func TraceMap(m domain.TreasureMap) domain.Path {
	return Trace(m.Start, m.Waypoints)
}
