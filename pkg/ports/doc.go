/*
Package ports defines the driven ports (interfaces) of the treasure map decoder.

These interfaces decouple the decoding pipeline from where maps come from and
where rendered results are memoized.

# Key Interfaces

  - MapLoader: Resolves a map name into a parsed domain.TreasureMap (files, memory).
  - RenderCache: Stores rendered maps keyed by a digest of both inputs (memory, Redis).
*/
package ports
