package domain

// Classification is the partition of voxel records by solidity. Both
// collections keep the relative input order of the records that landed in
// them, and every record added lands in exactly one of the two.
type Classification struct {
	Solid    []Point
	NonSolid []Point
}

// NewClassification creates an empty classification.
func NewClassification() *Classification {
	return &Classification{
		Solid:    make([]Point, 0),
		NonSolid: make([]Point, 0),
	}
}

// Add classifies one record. The flag is consumed here; only the coordinate
// triple is retained.
func (c *Classification) Add(r VoxelRecord) {
	if r.Solid {
		c.Solid = append(c.Solid, r.Point())
	} else {
		c.NonSolid = append(c.NonSolid, r.Point())
	}
}

// Total returns the number of classified records.
func (c *Classification) Total() int {
	return len(c.Solid) + len(c.NonSolid)
}

// Empty returns true if nothing has been classified.
func (c *Classification) Empty() bool {
	return c.Total() == 0
}

// Reset clears both collections for reuse.
func (c *Classification) Reset() {
	c.Solid = c.Solid[:0]
	c.NonSolid = c.NonSolid[:0]
}
