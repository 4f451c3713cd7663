package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
)

// Heights is the read-only view of a square height field.
type Heights interface {
	N() int
	Height(x, y int) int
}

// HexOptions control the isometric picture.
type HexOptions struct {
	Theme Theme
	// Scale is the width in pixels of half a lozenge.
	Scale float64
	// LineWidth is the edge thickness in pixels.
	LineWidth      float64
	FloorsAndWalls bool
	Dark           bool
	// Progress is called after each column of stacks with (done, total).
	Progress func(done, total int)
}

const (
	defaultHexScale     = 24
	defaultHexLineWidth = 1.5
	hexMargin           = 8
)

var (
	lozengeDJ    = math.Tan(math.Pi / 6)
	lozengeTwoDJ = 2 * lozengeDJ
)

type point struct{ I, J float64 }

// lozenge returns the vertices of the floor tile under (x, y) in scene units.
func lozenge(x, y int) (top, bot, lft, rgt point) {
	i := float64(y - x)
	j := -float64(x+y) * lozengeDJ
	return point{i, j + lozengeDJ}, point{i, j - lozengeDJ}, point{i - 1, j}, point{i + 1, j}
}

func (p point) up(k int) point { return point{p.I, p.J + float64(k)*lozengeTwoDJ} }

// hexCanvas maps scene units onto an RGBA image.
type hexCanvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	n     int
	scale float64
	line  float64
}

func newHexCanvas(n int, scale, line float64) *hexCanvas {
	w := int(math.Ceil(2*float64(n)*scale)) + 2*hexMargin
	h := int(math.Ceil(4*float64(n)*lozengeDJ*scale)) + 2*hexMargin
	return &hexCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(w, h),
		n:     n,
		scale: scale,
		line:  line,
	}
}

func (c *hexCanvas) project(p point) (float32, float32) {
	n := float64(c.n)
	x := (p.I+n)*c.scale + hexMargin
	y := ((2*n+1)*lozengeDJ-p.J)*c.scale + hexMargin
	return float32(x), float32(y)
}

func (c *hexCanvas) fill(col color.Color, pts ...point) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	x, y := c.project(pts[0])
	c.z.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = c.project(p)
		c.z.LineTo(x, y)
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// stroke draws each segment of the polyline as a thin quad.
func (c *hexCanvas) stroke(col color.Color, pts ...point) {
	b := c.img.Bounds()
	half := float32(c.line / 2)
	src := image.NewUniform(col)
	for k := 1; k < len(pts); k++ {
		ax, ay := c.project(pts[k-1])
		bx, by := c.project(pts[k])
		dx, dy := bx-ax, by-ay
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		c.z.Reset(b.Dx(), b.Dy())
		c.z.DrawOp = draw.Over
		c.z.MoveTo(ax+nx, ay+ny)
		c.z.LineTo(bx+nx, by+ny)
		c.z.LineTo(bx-nx, by-ny)
		c.z.LineTo(ax-nx, ay-ny)
		c.z.ClosePath()
		c.z.Draw(c.img, b, src, image.Point{})
	}
}

// RenderHex draws the stacks of h as an isometric lozenge tiling, from the
// back corner forwards.
func RenderHex(h Heights, opts HexOptions) (*image.RGBA, error) {
	n := h.N()
	if n <= 0 {
		return nil, fmt.Errorf("render hex: invalid size %d", n)
	}
	if opts.Scale <= 0 {
		opts.Scale = defaultHexScale
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = defaultHexLineWidth
	}
	if opts.Theme.Name == "" {
		t, err := ThemeByName(DefaultTheme)
		if err != nil {
			return nil, err
		}
		opts.Theme = t
	}

	c := newHexCanvas(n, opts.Scale, opts.LineWidth)
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.Dark {
		bg = color.RGBA{A: 255}
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	if opts.FloorsAndWalls {
		c.drawRoom(opts.Theme)
	}

	th := opts.Theme
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			stack := h.Height(x, y)
			if stack <= 0 {
				continue
			}
			nextLeft, nextRight := 0, 0
			if x+1 < n {
				nextLeft = h.Height(x+1, y)
			}
			if y+1 < n {
				nextRight = h.Height(x, y+1)
			}
			top, bot, lft, rgt := lozenge(x, y)

			if stack > nextLeft {
				c.fill(th.Left, bot.up(stack), bot, lft, lft.up(stack))
				c.stroke(th.Edges, lft, lft.up(stack))
			}
			if stack > nextRight {
				c.fill(th.Right, bot.up(stack), bot, rgt, rgt.up(stack))
				c.stroke(th.Edges, rgt, rgt.up(stack))
			}
			if stack > nextLeft && stack > nextRight {
				c.stroke(th.Edges, bot, bot.up(stack))
			}
			for k := min(nextLeft, nextRight); k < stack; k++ {
				c.stroke(th.Edges, lft.up(k), bot.up(k), rgt.up(k))
			}
			c.fill(th.Top, bot.up(stack), lft.up(stack), top.up(stack), rgt.up(stack))
			c.stroke(th.Edges, bot.up(stack), lft.up(stack), top.up(stack), rgt.up(stack), bot.up(stack))
		}
		if opts.Progress != nil {
			opts.Progress(x+1, n)
		}
	}
	return c.img, nil
}

// drawRoom paints the floor and the two back walls with their unit grids.
func (c *hexCanvas) drawRoom(th Theme) {
	n := c.n
	top, _, _, _ := lozenge(0, 0)
	_, bot, _, _ := lozenge(n-1, n-1)
	_, _, lft, _ := lozenge(n-1, 0)
	_, _, _, rgt := lozenge(0, n-1)

	c.fill(th.Top, top, lft, bot, rgt)
	c.fill(th.Left, top, top.up(n), rgt.up(n), rgt)
	c.fill(th.Right, top, top.up(n), lft.up(n), lft)

	fn := float64(n)
	for x := 0; x <= n; x++ {
		t, _, _, _ := lozenge(x, 0)
		c.stroke(th.Edges, t, point{t.I + fn, t.J - fn*lozengeDJ})
	}
	for y := 0; y <= n; y++ {
		t, _, _, _ := lozenge(0, y)
		c.stroke(th.Edges, t, point{t.I - fn, t.J - fn*lozengeDJ})
		c.stroke(th.Edges, t, t.up(n))
	}
	for x := 1; x <= n; x++ {
		t, _, _, _ := lozenge(x, 0)
		c.stroke(th.Edges, t, t.up(n))
	}
	for k := 1; k <= n; k++ {
		c.stroke(th.Edges, top.up(k), rgt.up(k))
		c.stroke(th.Edges, top.up(k), lft.up(k))
	}
}

// HexFilename names the hex picture after the run that produced it.
func HexFilename(n int, pattern string, flips int, floorsAndWalls bool, theme string) string {
	return fmt.Sprintf("Hex.Size=%d.Init=%s.NbFlips=%d.FloorsAndWall=%t.Color=%s.png",
		n, pattern, flips, floorsAndWalls, theme)
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
