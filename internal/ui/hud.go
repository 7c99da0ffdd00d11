//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"tilescape/internal/camera"
	"tilescape/internal/core"
	"tilescape/internal/weather"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads from and writes to.
type Source interface {
	core.ParameterControlsProvider
	core.FloatParameterSetter
	core.ChoiceParameterSetter
	Parameters() core.ParameterSnapshot
}

// statusFrames is how long a transition message stays visible.
const statusFrames = 120

// HUD renders the control panel along the right edge of the view.
type HUD struct {
	src    Source
	width  int
	title  string
	layout Layout

	img      *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	offsetX  int

	status      string
	statusTimer int
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, title string, width int) *HUD {
	h := &HUD{src: src, width: width, title: title}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.layout = NewLayout(width, src.ParameterControls())
	return h
}

// OnWeatherChanged shows a transition message.
func (h *HUD) OnWeatherChanged(s weather.State, _ weather.Visuals) {
	h.setStatus(fmt.Sprintf("Weather: %s", s))
}

// OnModeChanged shows a transition message.
func (h *HUD) OnModeChanged(m camera.Mode) {
	h.setStatus(fmt.Sprintf("Camera: %s", m))
}

func (h *HUD) setStatus(msg string) {
	h.status = msg
	h.statusTimer = statusFrames
}

// Contains reports whether the screen point lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && x >= h.offsetX && x < h.offsetX+h.width && y >= 0
}

// Update refreshes the snapshot and handles clicks. screenWidth anchors the
// panel to the right edge.
func (h *HUD) Update(screenWidth int) {
	if h == nil {
		return
	}
	h.offsetX = screenWidth - h.width
	h.snapshot = h.src.Parameters()
	if h.statusTimer > 0 {
		h.statusTimer--
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	b, ok := h.layout.Hit(mx-h.offsetX, my)
	if !ok {
		return
	}
	h.press(b)
}

func (h *HUD) press(b Button) {
	if b.Option != "" {
		h.src.SetChoiceParameter(b.Key, b.Option)
		return
	}
	row, ok := h.row(b.Key)
	if !ok {
		return
	}
	current, ok := h.floatValue(b.Key)
	if !ok {
		return
	}
	if target, changed := Step(row.Control, current, b.Dir); changed {
		h.src.SetFloatParameter(b.Key, target)
	}
}

func (h *HUD) row(key string) (Row, bool) {
	for _, r := range h.layout.Rows {
		if r.Control.Key == key {
			return r, true
		}
	}
	return Row{}, false
}

func (h *HUD) floatValue(key string) (float64, bool) {
	p, ok := h.snapshot.Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 220}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	infoColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	statusCol  = color.RGBA{R: 255, G: 210, B: 120, A: 255}
)

// Draw paints the panel over the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.img == nil || h.img.Bounds().Dy() != height {
		h.img = ebiten.NewImage(h.width, height)
	}
	h.img.Clear()
	h.img.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.img, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)

	for _, row := range h.layout.Rows {
		text.Draw(h.img, row.Control.Label, face, panelPadding, row.Top+labelBaseline, labelColor)
		p, hasValue := h.snapshot.Lookup(row.Control.Key)
		switch row.Control.Type {
		case core.ParamTypeChoice:
			for _, b := range row.Buttons {
				h.drawButton(b.Rect, b.Label, hasValue && p.Value == b.Option)
			}
		default:
			if len(row.Buttons) == 0 {
				continue
			}
			value := "--"
			if v, ok := h.floatValue(row.Control.Key); ok {
				value = FormatFloat(row.Control, v)
			}
			bounds := text.BoundString(face, value)
			x := row.Buttons[0].Rect.Min.X - buttonGap - bounds.Dx()
			text.Draw(h.img, value, face, x, row.Top+labelBaseline, labelColor)
			for _, b := range row.Buttons {
				h.drawButton(b.Rect, b.Label, false)
			}
		}
	}

	y := h.layout.Bottom + infoSpacing
	for _, g := range h.snapshot.Groups {
		for _, p := range g.Params {
			if p.Type != core.ParamTypeText {
				continue
			}
			text.Draw(h.img, p.Label+": "+p.Value, face, panelPadding, y, infoColor)
			y += infoSpacing
		}
	}
	if h.statusTimer > 0 {
		text.Draw(h.img, h.status, face, panelPadding, y+infoSpacing, statusCol)
	}
	text.Draw(h.img, "H: help", face, panelPadding, height-panelPadding, infoColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, active bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if active {
		bg = color.RGBA{R: 90, G: 120, B: 170, A: 255}
		fg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.img.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}
