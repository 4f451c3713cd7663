//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"arctic-room/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textPrimary     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textMuted       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	textHeader      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// HUD renders the parameter panel to the right of the room view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	lines    []string

	controls     []hudControlState
	controlKeys  map[string]bool
	intSetter    core.IntParameterSetter
	panelOffsetX int
	title        string

	face  text.Face
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{
		sim:         sim,
		width:       max(width, 0),
		title:       buildTitle(sim),
		face:        text.NewGoXFace(basicfont.Face7x13),
		controlKeys: map[string]bool{},
	}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeInt {
				continue
			}
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
			h.controlKeys[ctrl.Key] = true
		}
		layoutControls(h.controls, h.width)
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Width reports the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Height reports the panel height needed for the current snapshot.
func (h *HUD) Height() int {
	if h == nil || h.width == 0 {
		return 0
	}
	return panelHeight(len(h.controls), len(h.lines))
}

// Update refreshes the cached parameter snapshot and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		h.lines = nil
		return
	}
	h.snapshot = provider.Parameters()
	h.lines = infoLines(h.snapshot, h.controlKeys)
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX with at least the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 {
		return
	}
	height = max(height, h.Height())
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)
	h.drawControls()
	h.drawInfo()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.intSetter == nil {
		return
	}
	target, ok := stepTarget(state.control, state.intValue, direction)
	if !ok {
		return
	}
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) drawText(s string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(h.panel, s, h.face, op)
}

func (h *HUD) drawControls() {
	h.drawText(h.title, panelPadding, panelPadding, textHeader)
	if len(h.controls) == 0 {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		rowY := state.top + (lineHeight-glyphHeight)/2
		h.drawText(state.control.Label, panelPadding, rowY, textPrimary)

		valueColor := textPrimary
		if !state.hasValue {
			valueColor = textMuted
		}
		valueWidth, _ := text.Measure(state.value, h.face, 0)
		valueX := state.minusRect.Min.X - buttonGap - int(valueWidth)
		h.drawText(state.value, valueX, rowY, valueColor)

		_, minusOK := stepTarget(state.control, state.intValue, -1)
		_, plusOK := stepTarget(state.control, state.intValue, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && h.intSetter != nil && minusOK)
		h.drawButton(state.plusRect, "+", state.hasValue && h.intSetter != nil && plusOK)
	}
}

func (h *HUD) drawInfo() {
	y := controlsTop + len(h.controls)*lineHeight + sectionGap
	for _, line := range h.lines {
		col := textMuted
		if !strings.HasPrefix(line, " ") {
			col = textHeader
		}
		h.drawText(line, panelPadding, y, col)
		y += textLineGap
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	w, hgt := text.Measure(label, h.face, 0)
	x := rect.Min.X + (rect.Dx()-int(w))/2
	y := rect.Min.Y + (rect.Dy()-int(hgt))/2
	h.drawText(label, x, y, fg)
}
