/*
Package domain contains the core models of the treasure map decoder.

It defines the vocabulary shared by every other package: headings, coordinates,
raw instructions, resolved waypoints, traced paths and the parsed treasure map.
The package is pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Heading: one of N, E, S, W, cyclic in that order.
  - Instruction: a raw (azimuth, steps) record; the azimuth is a relative turn.
  - Waypoint: an instruction resolved to an absolute heading.
  - Coordinate: a (row, col) cell; north decreases row, west decreases col.
  - Path: the ordered cells visited from the start, one per unit step.
  - TreasureMap: the start coordinate plus its ordered waypoints.
*/
package domain
