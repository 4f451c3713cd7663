package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"arctic-room/internal/core"
)

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding  = 12
	lineHeight    = 36
	buttonSize    = 24
	buttonGap     = 6
	headerHeight  = 18
	textLineGap   = 16
	sectionGap    = 8
	controlsTop   = panelPadding + headerHeight + 14
	glyphHeight   = 13
	maxValueWidth = 18
)

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

// stepTarget returns the value one step away from current in direction, and
// whether that value stays inside the control bounds.
func stepTarget(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		target = max(target, int(math.Round(ctrl.Min)))
	}
	if ctrl.HasMax {
		target = min(target, int(math.Round(ctrl.Max)))
	}
	return target, target != current
}

// layoutControls stacks one row per control with -/+ buttons on the right.
func layoutControls(controls []hudControlState, width int) {
	for i := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = top
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

// infoLines flattens a snapshot into header and "label: value" lines,
// skipping keys that already have an adjustable control.
func infoLines(snap core.ParameterSnapshot, skip map[string]bool) []string {
	var lines []string
	for _, group := range snap.Groups {
		var body []string
		for _, p := range group.Params {
			if skip[p.Key] {
				continue
			}
			value := p.Value
			if len(value) > maxValueWidth {
				value = value[:maxValueWidth]
			}
			body = append(body, fmt.Sprintf("  %s: %s", p.Label, value))
		}
		if len(body) == 0 {
			continue
		}
		lines = append(lines, group.Name)
		lines = append(lines, body...)
	}
	return lines
}

// panelHeight is the height needed to show every control and info line.
func panelHeight(controls, lines int) int {
	return controlsTop + controls*lineHeight + sectionGap + lines*textLineGap + panelPadding
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// tintMask writes tint into buf where mask is set and clears it elsewhere.
func tintMask(buf []byte, mask []bool, tint color.RGBA) {
	for i, on := range mask {
		base := i * 4
		if !on {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		buf[base+0], buf[base+1], buf[base+2], buf[base+3] = tint.R, tint.G, tint.B, tint.A
	}
}

// premultiply returns c with alpha a in the premultiplied form ebiten expects.
func premultiply(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8((uint16(v)*uint16(a) + 127) / 255) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
