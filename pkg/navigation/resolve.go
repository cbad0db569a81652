package navigation

import (
	"fmt"

	"github.com/aretw0/piratemap/pkg/domain"
)

// QuarterTurn is the azimuth of one clockwise rotation step.
const QuarterTurn = 90

// InitialHeading is the heading every map starts with.
const InitialHeading = domain.North

// Resolve turns previous clockwise by azimuth degrees.
// Any non-negative multiple of 90 is accepted, including values above 360.
func Resolve(previous domain.Heading, azimuth int) (domain.Heading, error) {
	if azimuth < 0 || azimuth%QuarterTurn != 0 {
		return previous, fmt.Errorf("%w: got %d", domain.ErrInvalidAzimuth, azimuth)
	}
	if !previous.IsValid() {
		return previous, fmt.Errorf("invalid heading %d", int(previous))
	}

	rotations := (azimuth / QuarterTurn) % domain.HeadingCount
	return domain.Heading((int(previous) + rotations) % domain.HeadingCount), nil
}

// ResolveAll walks instructions in order starting from InitialHeading.
// Each azimuth is applied to the heading produced by the instruction before it.
// On failure the index of the offending instruction is returned alongside the error.
func ResolveAll(instructions []domain.Instruction) ([]domain.Waypoint, int, error) {
	heading := InitialHeading
	waypoints := make([]domain.Waypoint, 0, len(instructions))

	for i, ins := range instructions {
		next, err := Resolve(heading, ins.Azimuth)
		if err != nil {
			return nil, i, err
		}
		if ins.Steps < 0 {
			return nil, i, fmt.Errorf("negative step count %d", ins.Steps)
		}
		heading = next
		waypoints = append(waypoints, domain.Waypoint{Heading: heading, Steps: ins.Steps})
	}

	return waypoints, -1, nil
}
