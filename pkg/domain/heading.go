package domain

import "fmt"

// Heading is the facing direction of a walker.
type Heading int

// Headings in rotation order. A quarter turn clockwise advances the index by one.
const (
	North Heading = iota
	East
	South
	West
)

// HeadingCount is the size of the rotation cycle.
const HeadingCount = 4

// Headings returns all headings in rotation order.
func Headings() []Heading {
	return []Heading{North, East, South, West}
}

// String returns the single-letter form used in map listings.
func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}

// IsValid reports whether h is one of the four cardinal headings.
func (h Heading) IsValid() bool {
	return h >= North && h <= West
}

// Delta returns the row and column offsets of one step.
func (h Heading) Delta() (dRow, dCol int) {
	switch h {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// MarshalText encodes the heading as its letter, so legs serialize as "N" rather than 0.
func (h Heading) MarshalText() ([]byte, error) {
	if !h.IsValid() {
		return nil, fmt.Errorf("invalid heading %d", int(h))
	}
	return []byte(h.String()), nil
}
