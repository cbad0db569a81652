package domain

import (
	"errors"
	"fmt"
)

// ErrParse is the root of every map parsing failure.
var ErrParse = errors.New("parse error")

// ErrInvalidAzimuth is returned for a negative azimuth or one that is not a multiple of 90.
var ErrInvalidAzimuth = errors.New("azimuth must be a non-negative multiple of 90")

// ErrIndeterminateTreasure is returned when two paths do not pin down a single treasure cell.
var ErrIndeterminateTreasure = errors.New("treasure location is indeterminate")

// ErrOutOfCanvas is returned when a cell to be drawn falls outside the allocated grid.
var ErrOutOfCanvas = errors.New("coordinate outside canvas")

// ErrMapNotFound is returned when a loader has no map under the requested name.
var ErrMapNotFound = errors.New("map not found")

// ErrCacheMiss is returned by render caches for unknown keys.
var ErrCacheMiss = errors.New("cache miss")

// ParseError describes a malformed line in a map source.
type ParseError struct {
	Line   int    // 1-based line number, 0 when not tied to a line
	Text   string // Raw line content
	Reason string // Human-readable reason for failure
	Err    error  // Underlying cause, if any
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Line == 0 {
		return fmt.Sprintf("parse error: %s", msg)
	}
	return fmt.Sprintf("parse error at line %d %q: %s", e.Line, e.Text, msg)
}

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IndeterminateError carries the number of intersections found.
type IndeterminateError struct {
	Matches int
}

func (e *IndeterminateError) Error() string {
	return fmt.Sprintf("%s: %d intersection(s)", ErrIndeterminateTreasure, e.Matches)
}

func (e *IndeterminateError) Unwrap() error {
	return ErrIndeterminateTreasure
}
