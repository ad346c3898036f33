//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"game-hub/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the side panel next to a game: read-only parameters, +/-
// controls for adjustable ones, and action buttons.
type HUD struct {
	src      parameterProvider
	title    string
	width    int
	height   int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls  []hudControlState
	intSetter core.IntParameterSetter
	buttons   []Button

	panelOffsetX int
	canvas       *canvas
}

// NewHUD constructs a HUD for src. Buttons are positioned in panel
// coordinates.
func NewHUD(src parameterProvider, title string, width, height int, buttons []Button) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, title: title, width: width, height: height, buttons: buttons}
	if title == "" {
		h.title = "Controls"
	}
	if width > 0 {
		h.canvas = newCanvas()
	}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Update refreshes the snapshot and handles presses. It returns the IDs of
// the action buttons pressed this frame.
func (h *HUD) Update(panelOffsetX int, points []image.Point) []string {
	if h == nil {
		return nil
	}
	h.panelOffsetX = panelOffsetX
	if h.src == nil {
		h.snapshot = core.ParameterSnapshot{}
		return nil
	}
	h.snapshot = h.src.Parameters()
	h.refreshControlValues()

	var pressed []string
	for _, p := range points {
		if p.X < h.panelOffsetX {
			continue
		}
		local := image.Pt(p.X-h.panelOffsetX, p.Y)
		if h.handleControlPress(local) {
			continue
		}
		if id, ok := HitButton(h.buttons, local); ok {
			pressed = append(pressed, id)
		}
	}
	return pressed
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 || h.height <= 0 {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawParams()
	for _, b := range h.buttons {
		h.canvas.drawButton(h.panel, b, true)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
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
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) handleControlPress(p image.Point) bool {
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(p.X, p.Y, state.minusRect) {
			h.applyAdjustment(state, -1)
			return true
		}
		if pointInRect(p.X, p.Y, state.plusRect) {
			h.applyAdjustment(state, 1)
			return true
		}
	}
	return false
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.intSetter == nil || !h.canAdjust(state, direction) {
		return
	}
	target := state.control.Clamp(state.intValue + direction*state.step())
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.intSetter == nil || direction == 0 {
		return false
	}
	if direction < 0 {
		return state.intValue > state.control.Min
	}
	return state.intValue < state.control.Max
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.canvas.drawButton(h.panel, Button{Label: "-", Rect: state.minusRect}, state.hasValue && h.canAdjust(state, -1))
		h.canvas.drawButton(h.panel, Button{Label: "+", Rect: state.plusRect}, state.hasValue && h.canAdjust(state, 1))
	}
}

// drawParams lists every snapshot value that is not already a control.
func (h *HUD) drawParams() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + infoLine
	for _, group := range h.snapshot.Groups {
		shown := false
		for _, p := range group.Params {
			if h.isControl(p.Key) {
				continue
			}
			if !shown {
				text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 140, G: 140, B: 160, A: 255})
				y += infoLine
				shown = true
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding+8, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += infoLine
		}
	}
}

func (h *HUD) isControl(key string) bool {
	for _, c := range h.controls {
		if c.control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func (s *hudControlState) step() int {
	if s.control.Step <= 0 {
		return 1
	}
	return s.control.Step
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoLine       = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
