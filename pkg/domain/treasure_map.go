package domain

// Instruction is one raw map record. Azimuth is a turn in degrees relative to
// the heading left by the previous instruction.
type Instruction struct {
	Azimuth int `json:"azimuth" yaml:"azimuth" mapstructure:"azimuth"`
	Steps   int `json:"steps" yaml:"steps" mapstructure:"steps"`
}

// Waypoint is an instruction whose azimuth has been resolved to an absolute heading.
type Waypoint struct {
	Heading Heading `json:"heading" yaml:"heading"`
	Steps   int     `json:"steps" yaml:"steps"`
}

// TreasureMap is the parsed form of one input map.
type TreasureMap struct {
	Start     Coordinate `json:"start" yaml:"start"`
	Waypoints []Waypoint `json:"waypoints" yaml:"waypoints"`

	// Instructions keeps the raw records the waypoints were resolved from.
	Instructions []Instruction `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// TotalSteps is the number of unit steps the map describes.
func (m TreasureMap) TotalSteps() int {
	total := 0
	for _, wp := range m.Waypoints {
		total += wp.Steps
	}
	return total
}

// Path is the ordered list of visited cells, starting at the map's start.
// The same cell may appear more than once.
type Path []Coordinate

// Start returns the first cell of the path.
func (p Path) Start() (Coordinate, bool) {
	if len(p) == 0 {
		return Coordinate{}, false
	}
	return p[0], true
}

// Contains reports whether c is visited at least once.
func (p Path) Contains(c Coordinate) bool {
	for _, el := range p {
		if el == c {
			return true
		}
	}
	return false
}
