// Package file reads treasure maps from the filesystem.
//
// Two formats are understood. The plain text format puts the start coordinate
// on the first non-empty line and one "<azimuth> <steps>" instruction per later
// line:
//
//	0 11
//	270 5
//	0 6
//
// The YAML format (".yaml" or ".yml") carries the same data:
//
//	start: [0, 11]
//	instructions:
//	  - [270, 5]
//	  - {azimuth: 0, steps: 6}
//
// Blank lines are ignored in the text format. Azimuths are turns relative to
// the heading left by the previous instruction, starting from north.
package file
