package domain

import "fmt"

// Point is one cell position in the integer voxel grid. Coordinates carry
// no declared range; negative values are as valid as positive ones.
type Point struct {
	X, Y, Z int
}

// String renders the point as "x,y,z".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// VoxelRecord is one parsed terrain-map line: a grid cell plus its solidity
// flag. Records are immutable once constructed; the parser never builds one
// from a line that did not fully validate.
type VoxelRecord struct {
	X, Y, Z int
	Solid   bool
}

// Point returns the record's coordinates without the flag.
func (r VoxelRecord) Point() Point {
	return Point{X: r.X, Y: r.Y, Z: r.Z}
}

// String renders the record in the canonical line format "x,y,z,true|false".
// Coordinates round-trip exactly through Parse; the flag round-trips only
// through its canonical form, not through whatever token produced it.
func (r VoxelRecord) String() string {
	return fmt.Sprintf("%d,%d,%d,%t", r.X, r.Y, r.Z, r.Solid)
}
