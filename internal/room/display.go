package room

import "image/color"

var heightPalette = buildHeightPalette()

// HeightRamp returns the 256-entry colour ramp indexed by scaled height.
func HeightRamp() []color.RGBA { return heightPalette }

// Palette exposes the colour ramp used for the display buffer.
func (s *Sim) Palette() []color.RGBA { return heightPalette }

// heightStops approximates a perceptual blue-green-yellow ramp.
var heightStops = []color.RGBA{
	{R: 68, G: 1, B: 84, A: 255},
	{R: 59, G: 82, B: 139, A: 255},
	{R: 33, G: 145, B: 140, A: 255},
	{R: 94, G: 201, B: 98, A: 255},
	{R: 253, G: 231, B: 37, A: 255},
}

func buildHeightPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	segments := len(heightStops) - 1
	for i := range palette {
		t := float64(i) / 255 * float64(segments)
		seg := int(t)
		if seg >= segments {
			seg = segments - 1
		}
		palette[i] = lerpRGBA(heightStops[seg], heightStops[seg+1], t-float64(seg))
	}
	return palette
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// displayValue maps a height in [0, n] onto the palette index range.
func displayValue(h, n int) uint8 {
	if n <= 0 || h <= 0 {
		return 0
	}
	if h >= n {
		return 255
	}
	return uint8(h * 255 / n)
}

func (s *Sim) rebuildDisplay() {
	f := s.session.field
	cells := f.h.Cells()
	if len(s.display) != len(cells) {
		s.display = make([]uint8, len(cells))
	}
	for i, h := range cells {
		s.display[i] = displayValue(h, f.n)
	}
}
