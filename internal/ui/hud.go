//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"terrain-bg/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the texture. Controls can be
// adjusted with the mouse or with Tab and the arrow keys.
type HUD struct {
	target   any
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	status   []string

	controls    []hudControlState
	selected    int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
	title       string

	face  text.Face
	pixel *ebiten.Image
}

// NewHUD constructs a HUD editing target. target may implement any of the
// core parameter interfaces; the ones it lacks are simply not offered.
func NewHUD(target any, title string, width int) *HUD {
	if width <= 0 {
		return nil
	}
	if title == "" {
		title = "Controls"
	}
	h := &HUD{target: target, width: width, title: title, face: text.NewGoXFace(basicfont.Face7x13)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := target.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := target.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus replaces the informational lines drawn below the controls.
func (h *HUD) SetStatus(lines []string) {
	if h == nil {
		return
	}
	h.status = lines
}

// Update refreshes the cached values and handles input. It reports whether a
// parameter was changed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = panelOffsetX
	h.refresh()
	return h.handleKeys() || h.handleMouse()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	provider, ok := h.target.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
	} else {
		h.snapshot = provider.Parameters()
	}
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		if reader, ok := h.target.(core.ParameterReader); ok {
			if v, ok := reader.FloatParameter(state.control.Key); ok {
				state.setValue(v)
				continue
			}
		}
		param, ok := h.snapshot.Find(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleKeys() bool {
	if len(h.controls) == 0 {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = len(h.controls) - 1
		}
		h.selected = (h.selected + step) % len(h.controls)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		return h.adjust(&h.controls[h.selected], -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		return h.adjust(&h.controls[h.selected], 1)
	}
	return false
}

func (h *HUD) handleMouse() bool {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return false
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		if pointInRect(px, my, state.minusRect) {
			h.selected = i
			return h.adjust(state, -1)
		}
		if pointInRect(px, my, state.plusRect) {
			h.selected = i
			return h.adjust(state, 1)
		}
	}
	return false
}

// adjust steps a control by direction and pushes the value to the target.
func (h *HUD) adjust(state *hudControlState, direction int) bool {
	target, ok := h.next(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if !h.intSetter.SetIntParameter(state.control.Key, int(target)) {
			return false
		}
		state.intValue = int(target)
		state.value = strconv.Itoa(state.intValue)
	case core.ParamTypeFloat:
		if !h.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.value = formatFloat(state.control, target)
	}
	state.floatValue = target
	return true
}

// next returns the stepped value, or false when the control cannot move.
func (h *HUD) next(state *hudControlState, direction int) (float64, bool) {
	if state == nil || !state.hasValue || direction == 0 {
		return 0, false
	}
	step := state.control.Step
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	target := state.control.Clamp(state.floatValue + float64(direction)*step)
	if math.Abs(target-state.floatValue) < 1e-9 {
		return 0, false
	}
	return target, true
}

func (h *HUD) drawControls() {
	h.drawText(h.title, panelPadding, panelPadding, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		h.drawText("No adjustable parameters", panelPadding, panelPadding+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == h.selected {
			labelColor = color.RGBA{R: 255, G: 214, B: 120, A: 255}
		}
		textY := state.top + (lineHeight-glyphHeight)/2
		h.drawText(state.control.Label, panelPadding, textY, labelColor)

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		w, _ := text.Measure(state.value, h.face, 0)
		h.drawText(state.value, state.minusRect.Min.X-buttonGap-int(math.Ceil(w)), textY, valueColor)

		_, minusOK := h.next(state, -1)
		_, plusOK := h.next(state, 1)
		h.drawButton(state.minusRect, "-", minusOK)
		h.drawButton(state.plusRect, "+", plusOK)
	}

	y := controlsTop + len(h.controls)*lineHeight + infoSpacing/2
	for _, line := range h.status {
		h.drawText(line, panelPadding, y, color.RGBA{R: 170, G: 170, B: 180, A: 255})
		y += glyphHeight + 4
	}
}

func (h *HUD) drawText(s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(h.panel, s, h.face, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
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

	w, lh := text.Measure(label, h.face, 0)
	x := rect.Min.X + (rect.Dx()-int(w))/2
	y := rect.Min.Y + (rect.Dy()-int(lh))/2
	h.drawText(label, x, y, fg)
}

func (h *HUD) layoutControls() {
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

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

func (s *hudControlState) setValue(v float64) {
	if s.control.Type == core.ParamTypeInt {
		s.intValue = int(math.Round(v))
		v = float64(s.intValue)
		s.value = strconv.Itoa(s.intValue)
	} else {
		s.value = formatFloat(s.control, v)
	}
	s.floatValue = v
	s.hasValue = true
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding = 12
	lineHeight   = 30
	buttonSize   = 22
	buttonGap    = 6
	glyphHeight  = 13
	infoSpacing  = 30
	controlsTop  = panelPadding + glyphHeight + 16
)
