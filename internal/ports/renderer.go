package ports

import (
	"context"
	"io"

	"github.com/terravox/voxview/internal/domain"
)

// Axis identifies which voxel coordinate points up in the rendered scene.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Valid reports whether the axis is one of x, y, z.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// RenderOptions is the camera and marker configuration handed to a renderer.
type RenderOptions struct {
	UpAxis       Axis
	FieldOfView  float64 // degrees
	MarkerColor  string  // CSS color for solid markers, e.g. "#ff0000"
	MarkerSize   int     // pixels
	ShowNonSolid bool    // draw the non-solid collection as a dim series
	Title        string
}

// DefaultRenderOptions mirrors the historical visualizer: red markers of
// size 5, y-up view with a 60 degree field of view, non-solid hidden.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		UpAxis:      AxisY,
		FieldOfView: 60,
		MarkerColor: "#ff0000",
		MarkerSize:  5,
	}
}

// Renderer displays a classification. The solid collection is the subject;
// the non-solid collection is drawn only on request. An empty solid
// collection means "nothing to draw", never an error.
type Renderer interface {
	Render(ctx context.Context, c *domain.Classification, opts RenderOptions) error
}

// PageRenderer is satisfied by renderers that can write the view to an
// arbitrary writer. Serve mode uses it to answer HTTP requests without
// touching the output file.
type PageRenderer interface {
	RenderTo(w io.Writer, c *domain.Classification, opts RenderOptions) error
}
