package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Frame is one checkpoint of a room: row-major heights and eligibility maps.
type Frame struct {
	N         int
	Heights   []int
	Addable   []bool
	Removable []bool
	Title     string
}

// cellGrid adapts a row-major N×N buffer to plotter.GridXYZ.
type cellGrid struct {
	n int
	z func(i int) float64
}

func (g cellGrid) Dims() (c, r int)   { return g.n, g.n }
func (g cellGrid) Z(c, r int) float64 { return g.z(r*g.n + c) }
func (g cellGrid) X(c int) float64    { return float64(c) }
func (g cellGrid) Y(r int) float64    { return float64(r) }

func heightGrid(n int, h []int) cellGrid {
	return cellGrid{n: n, z: func(i int) float64 { return float64(h[i]) }}
}

func maskGrid(n int, m []bool) cellGrid {
	return cellGrid{n: n, z: func(i int) float64 {
		if m[i] {
			return 1
		}
		return 0
	}}
}

// rampPalette adapts a colour slice to palette.Palette.
type rampPalette []color.Color

func (p rampPalette) Colors() []color.Color { return p }

var maskPalette = rampPalette{color.Black, color.White}

// HeightPalette converts an RGBA ramp for use in heat maps.
func HeightPalette(ramp []color.RGBA) palette.Palette {
	out := make(rampPalette, len(ramp))
	for i, c := range ramp {
		out[i] = c
	}
	return out
}

const (
	panelSize = 6 * vg.Inch
	panelPad  = vg.Length(12)
)

// Checkpoint renders the frame as three side-by-side heat maps (heights,
// addable, removable). A nil or empty heights palette falls back to
// palette.Heat.
func Checkpoint(f Frame, heights palette.Palette) (*vgimg.Canvas, error) {
	if f.N <= 0 || len(f.Heights) != f.N*f.N || len(f.Addable) != f.N*f.N || len(f.Removable) != f.N*f.N {
		return nil, fmt.Errorf("checkpoint: inconsistent frame for side %d", f.N)
	}
	if heights == nil || len(heights.Colors()) == 0 {
		heights = palette.Heat(256, 1)
	}

	hp := newPanel(f.Title, heightGrid(f.N, f.Heights), heights, float64(f.N))
	ap := newPanel("Cubes that can be added", maskGrid(f.N, f.Addable), maskPalette, 1)
	rp := newPanel("Cubes that can be removed", maskGrid(f.N, f.Removable), maskPalette, 1)

	img := vgimg.New(3*panelSize, panelSize+vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1, Cols: 3,
		PadX: panelPad, PadY: panelPad,
		PadTop: panelPad, PadBottom: panelPad,
		PadLeft: panelPad, PadRight: panelPad,
	}
	plots := [][]*plot.Plot{{hp, ap, rp}}
	canvases := plot.Align(plots, tiles, dc)
	for j, p := range plots[0] {
		p.Draw(canvases[0][j])
	}
	return img, nil
}

func newPanel(title string, g cellGrid, pal palette.Palette, vmax float64) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x-axis"
	p.Y.Label.Text = "y-axis"
	// rows grow downwards like an image
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	hm := plotter.NewHeatMap(g, pal)
	hm.Min = 0
	hm.Max = vmax
	p.Add(hm)

	n := float64(g.n)
	p.X.Min, p.X.Max = -0.5, n-0.5
	p.Y.Min, p.Y.Max = -0.5, n-0.5
	return p
}

// SaveCheckpoint renders the frame into dir and returns the written path.
func SaveCheckpoint(dir string, iteration, total int, f Frame, heights palette.Palette) (string, error) {
	img, err := Checkpoint(f, heights)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, CheckpointName(iteration, total))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create checkpoint: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(out); err != nil {
		out.Close()
		return "", fmt.Errorf("write checkpoint: %w", err)
	}
	return path, out.Close()
}

const checkpointPrefix = "room_iterx_"

// CheckpointName zero-pads the iteration to the width of total.
func CheckpointName(iteration, total int) string {
	width := len(strconv.Itoa(total))
	return fmt.Sprintf("%s%0*d.png", checkpointPrefix, width, iteration)
}

// PrepareResultsDir creates dir and removes checkpoint images left by earlier
// runs. It returns the number of files removed.
func PrepareResultsDir(dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create results dir: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list results dir: %w", err)
	}
	removed := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, checkpointPrefix) || !strings.HasSuffix(name, ".png") {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return removed, fmt.Errorf("failed to remove stale checkpoint: %w", err)
		}
		removed++
	}
	return removed, nil
}
