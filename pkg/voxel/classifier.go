package voxel

import "github.com/terravox/voxview/internal/domain"

// Classify partitions records into solid and non-solid coordinate
// collections in a single stable pass: every record lands in exactly one
// collection and each collection keeps the records' relative input order.
func Classify(records []domain.VoxelRecord) *domain.Classification {
	c := domain.NewClassification()
	for _, r := range records {
		c.Add(r)
	}
	return c
}
