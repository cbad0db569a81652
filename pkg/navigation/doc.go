// Package navigation implements the pure steps of the decoding pipeline:
// resolving relative azimuth turns into headings, tracing paths cell by cell,
// measuring and normalizing them, and locating the treasure where two paths cross.
//
// Every function is side-effect free and safe for concurrent use.
package navigation
