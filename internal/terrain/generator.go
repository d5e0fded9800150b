// Package terrain generates sample terrain maps from 2D perlin noise, in
// the same line format the viewer consumes.
package terrain

import (
	"bufio"
	"fmt"
	"os"

	"github.com/aquilax/go-perlin"

	"github.com/terravox/voxview/internal/domain"
)

// Perlin parameters: smoothing, frequency, octave count.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// noiseScale stretches the unit noise field across the grid so a map shows
// a few hills rather than one slope.
const noiseScale = 4.0

// Generator produces a voxel grid where each (x, z) column gets a noise
// height and cells at or below it are solid. Output is deterministic for a
// given size, height and seed.
type Generator struct {
	Size   int // grid width and depth
	Height int // grid height (y extent)
	Seed   int64

	noise *perlin.Perlin
}

// NewGenerator creates a generator for a Size x Height x Size grid.
func NewGenerator(size, height int, seed int64) *Generator {
	return &Generator{
		Size:   size,
		Height: height,
		Seed:   seed,
		noise:  perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Records enumerates the full grid in x, y, z order.
func (g *Generator) Records() []domain.VoxelRecord {
	recs := make([]domain.VoxelRecord, 0, g.Size*g.Size*g.Height)
	for x := 0; x < g.Size; x++ {
		for y := 0; y < g.Height; y++ {
			for z := 0; z < g.Size; z++ {
				recs = append(recs, domain.VoxelRecord{
					X: x, Y: y, Z: z,
					Solid: y <= g.surface(x, z),
				})
			}
		}
	}
	return recs
}

// surface returns the terrain height for a column, in [0, Height).
func (g *Generator) surface(x, z int) int {
	// Noise2D returns roughly -1..1; normalize to 0..1 before scaling.
	n := g.noise.Noise2D(
		float64(x)/float64(g.Size)*noiseScale,
		float64(z)/float64(g.Size)*noiseScale,
	)
	n = (n + 1) / 2

	h := int(n * float64(g.Height-1))
	if h < 0 {
		h = 0
	}
	if h > g.Height-1 {
		h = g.Height - 1
	}
	return h
}

// WriteFile writes the map, one record per line, to path.
func (g *Generator) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, rec := range g.Records() {
		if _, err := fmt.Fprintln(w, rec.String()); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
