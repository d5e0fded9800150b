// Package echarts renders classified voxels as an interactive echarts-gl
// 3D scatter page. The browser supplies the orbit, zoom and pan controls;
// nothing here blocks on an event loop of its own.
package echarts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/terravox/voxview/internal/domain"
	"github.com/terravox/voxview/internal/ports"
)

// chartID pins the generated JS variable name (goecharts_voxview) so the
// view-control hook below can address the chart.
const chartID = "voxview"

const nonSolidColor = "#9e9e9e"

// HTMLRenderer implements ports.Renderer and ports.PageRenderer by writing
// a self-contained HTML page.
type HTMLRenderer struct {
	Path string
}

// NewHTMLRenderer creates a renderer that writes to the given file path.
func NewHTMLRenderer(path string) *HTMLRenderer {
	return &HTMLRenderer{Path: path}
}

// Render writes the view for the given classification to the configured
// path. An empty solid collection still produces a valid page with the
// reference axes and an empty series.
func (r *HTMLRenderer) Render(ctx context.Context, c *domain.Classification, o ports.RenderOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.RenderTo(&buf, c, o); err != nil {
		return err
	}
	return os.WriteFile(r.Path, buf.Bytes(), 0o644)
}

// RenderTo writes the view to an arbitrary writer. Serve mode uses it to
// answer HTTP requests without touching the output file.
func (r *HTMLRenderer) RenderTo(w io.Writer, c *domain.Classification, o ports.RenderOptions) error {
	if !o.UpAxis.Valid() {
		return fmt.Errorf("render: invalid up axis %q", o.UpAxis)
	}

	title := o.Title
	if title == "" {
		title = "voxview"
	}
	names := axisNames(o.UpAxis)

	chart := charts.NewScatter3D()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			ChartID:   chartID,
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("solid=%d non_solid=%d up=%s", len(c.Solid), len(c.NonSolid), o.UpAxis),
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: names[0], Type: "value"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: names[1], Type: "value"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: names[2], Type: "value"}),
	)

	chart.AddSeries("solid", seriesData(c.Solid, o.UpAxis),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: o.MarkerColor}),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: float32(o.MarkerSize)}),
	)
	if o.ShowNonSolid && len(c.NonSolid) > 0 {
		chart.AddSeries("non-solid", seriesData(c.NonSolid, o.UpAxis),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: nonSolidColor, Opacity: opts.Float(0.35)}),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: float32(o.MarkerSize)}),
		)
	}

	chart.AddJSFuncs(fmt.Sprintf(
		"goecharts_%s.setOption({grid3D: {viewControl: {projection: 'perspective', distance: %.1f}}});",
		chartID, viewDistance(o.FieldOfView)))

	return chart.Render(w)
}

// viewDistance maps a field-of-view angle onto a camera distance.
// echarts-gl exposes no fov knob, so a narrower angle moves the camera out
// to keep the visible extent roughly constant.
func viewDistance(fovDegrees float64) float64 {
	const (
		refDistance = 200.0
		refFOV      = 60.0
	)
	if fovDegrees <= 0 || fovDegrees >= 180 {
		return refDistance
	}
	return refDistance * math.Tan(refFOV*math.Pi/360) / math.Tan(fovDegrees*math.Pi/360)
}

func seriesData(points []domain.Point, up ports.Axis) []opts.Chart3DData {
	data := make([]opts.Chart3DData, 0, len(points))
	for _, p := range points {
		gx, gy, gz := remap(p, up)
		data = append(data, opts.Chart3DData{Value: []interface{}{gx, gy, gz}})
	}
	return data
}

// remap orders a point's coordinates as (chart x, chart y, chart z) so the
// configured up axis lands on the chart's vertical z axis.
func remap(p domain.Point, up ports.Axis) (int, int, int) {
	switch up {
	case ports.AxisX:
		return p.Y, p.Z, p.X
	case ports.AxisZ:
		return p.X, p.Y, p.Z
	default: // AxisY, the terrain dumps' native orientation
		return p.X, p.Z, p.Y
	}
}

func axisNames(up ports.Axis) [3]string {
	switch up {
	case ports.AxisX:
		return [3]string{"y", "z", "x"}
	case ports.AxisZ:
		return [3]string{"x", "y", "z"}
	default:
		return [3]string{"x", "z", "y"}
	}
}
