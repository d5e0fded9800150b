package echarts

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terravox/voxview/internal/domain"
	"github.com/terravox/voxview/internal/ports"
)

func sampleClassification() *domain.Classification {
	c := domain.NewClassification()
	c.Add(domain.VoxelRecord{X: 0, Y: 0, Z: 0, Solid: true})
	c.Add(domain.VoxelRecord{X: 1, Y: 2, Z: 3, Solid: true})
	c.Add(domain.VoxelRecord{X: 4, Y: 5, Z: 6, Solid: false})
	return c
}

func TestRenderTo(t *testing.T) {
	r := NewHTMLRenderer("")
	var buf bytes.Buffer

	opts := ports.DefaultRenderOptions()
	opts.Title = "test map"

	if err := r.RenderTo(&buf, sampleClassification(), opts); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{"scatter3D", "#ff0000", "test map", "goecharts_voxview"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// Non-solid is hidden by default.
	if strings.Contains(html, "non-solid") {
		t.Error("output contains non-solid series without ShowNonSolid")
	}
}

func TestRenderToShowNonSolid(t *testing.T) {
	r := NewHTMLRenderer("")
	var buf bytes.Buffer

	opts := ports.DefaultRenderOptions()
	opts.ShowNonSolid = true

	if err := r.RenderTo(&buf, sampleClassification(), opts); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if !strings.Contains(buf.String(), "non-solid") {
		t.Error("output missing non-solid series")
	}
}

func TestRenderToEmptyScene(t *testing.T) {
	r := NewHTMLRenderer("")
	var buf bytes.Buffer

	// Zero solid voxels is "nothing to draw", not an error.
	if err := r.RenderTo(&buf, domain.NewClassification(), ports.DefaultRenderOptions()); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty scene produced no page")
	}
}

func TestRenderToInvalidUpAxis(t *testing.T) {
	r := NewHTMLRenderer("")
	var buf bytes.Buffer

	opts := ports.DefaultRenderOptions()
	opts.UpAxis = "w"

	if err := r.RenderTo(&buf, sampleClassification(), opts); err == nil {
		t.Fatal("RenderTo() error = nil for invalid up axis")
	}
}

func TestRenderWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxels.html")
	r := NewHTMLRenderer(path)

	if err := r.Render(context.Background(), sampleClassification(), ports.DefaultRenderOptions()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "scatter3D") {
		t.Error("output file missing chart")
	}
}

func TestRemap(t *testing.T) {
	p := domain.Point{X: 1, Y: 2, Z: 3}

	tests := []struct {
		up         ports.Axis
		gx, gy, gz int
	}{
		{up: ports.AxisY, gx: 1, gy: 3, gz: 2}, // y lands on the vertical axis
		{up: ports.AxisZ, gx: 1, gy: 2, gz: 3},
		{up: ports.AxisX, gx: 2, gy: 3, gz: 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.up), func(t *testing.T) {
			gx, gy, gz := remap(p, tt.up)
			if gx != tt.gx || gy != tt.gy || gz != tt.gz {
				t.Errorf("remap(%v, %s) = (%d,%d,%d), want (%d,%d,%d)",
					p, tt.up, gx, gy, gz, tt.gx, tt.gy, tt.gz)
			}
		})
	}
}

func TestViewDistance(t *testing.T) {
	// The reference fov maps to the reference distance; narrower angles
	// move the camera out.
	if got := viewDistance(60); got < 199 || got > 201 {
		t.Errorf("viewDistance(60) = %v, want ~200", got)
	}
	if viewDistance(30) <= viewDistance(60) {
		t.Error("narrower fov should give larger distance")
	}
	if got := viewDistance(0); got != 200 {
		t.Errorf("viewDistance(0) = %v, want fallback 200", got)
	}
}
