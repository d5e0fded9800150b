// Package domain contains the core entities and value objects for voxview.
//
// This is the innermost layer: it has no dependencies on infrastructure
// concerns (files, HTTP, rendering, logging) and holds only the voxel data
// model and its invariants.
//
// # Entities
//
//   - [VoxelRecord]: one parsed terrain-map line (coordinates plus solidity)
//   - [Point]: an integer grid position without the flag
//   - [Classification]: the stable solid / non-solid partition of records
//   - [RejectedLine]: a line the loader could not parse, with its position
//
// Parse failures are typed ([MalformedLineError], [InvalidCoordinateError],
// [InvalidFlagError]) and unwrap to sentinels so callers can branch with
// errors.Is without losing the diagnostics.
package domain
