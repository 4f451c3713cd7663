//go:build ebiten

package ui

import (
	"image/color"

	"arctic-room/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type maskProvider interface {
	AddableMask() []bool
	RemovableMask() []bool
}

type lastMoveProvider interface {
	LastMoveCell() (x, y int, add, ok bool)
}

var (
	addableTint   = premultiply(color.RGBA{R: 218, G: 112, B: 214}, 150) // orchid
	removableTint = premultiply(color.RGBA{R: 255, G: 140, B: 0}, 150)   // darkorange
)

// Overlay draws the eligibility maps and the last move on top of the room.
type Overlay struct {
	sim           core.Sim
	scale         int
	showAddable   bool
	showRemovable bool
	showLastMove  bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: max(scale, 1), showLastMove: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 addable, 2 removable, 3 last move.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAddable = !o.showAddable
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showRemovable = !o.showRemovable
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showLastMove = !o.showLastMove
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if provider, ok := o.sim.(maskProvider); ok {
		if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
			o.maskImg = ebiten.NewImage(size.W, size.H)
			o.maskBuf = make([]byte, 4*total)
		}
		if o.showAddable {
			o.drawMask(screen, provider.AddableMask(), addableTint)
		}
		if o.showRemovable {
			o.drawMask(screen, provider.RemovableMask(), removableTint)
		}
	}
	if o.showLastMove {
		if provider, ok := o.sim.(lastMoveProvider); ok {
			if x, y, add, ok := provider.LastMoveCell(); ok {
				col := removableTint
				if add {
					col = addableTint
				}
				o.drawFrame(screen, x, y, col)
			}
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []bool, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	tintMask(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

// drawFrame outlines cell (x, y) with a one-pixel border.
func (o *Overlay) drawFrame(screen *ebiten.Image, x, y int, col color.RGBA) {
	s := float64(o.scale)
	left, top := float64(x)*s, float64(y)*s
	edges := [][4]float64{
		{left, top, s, 1},
		{left, top + s - 1, s, 1},
		{left, top, 1, s},
		{left + s - 1, top, 1, s},
	}
	for _, e := range edges {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(e[2], e[3])
		op.GeoM.Translate(e[0], e[1])
		op.ColorScale.ScaleWithColor(col)
		screen.DrawImage(o.pixel, op)
	}
}
