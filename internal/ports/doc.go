// Package ports defines the interfaces that connect the voxel core to
// infrastructure adapters.
//
// The core pipeline (pkg/voxel) depends only on these interfaces; concrete
// implementations live in internal/adapters. This keeps parsing and
// classification testable without a file system or a graphics stack.
//
// # Port Interfaces
//
//   - [LineSource]: supplies raw text lines in input order
//   - [Renderer]: displays the classified solid voxels
//   - [PageRenderer]: optional extension for renderers that can write the
//     view to an arbitrary writer (used by serve mode)
package ports
