package ui

import (
	"image"
	"math"
	"strconv"

	"tilescape/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

// Button is a clickable region of the panel. Choice buttons carry the
// option they select; step buttons carry a direction of -1 or +1.
type Button struct {
	Rect   image.Rectangle
	Label  string
	Key    string
	Option string
	Dir    int
}

// Row is one control and its buttons, in panel coordinates.
type Row struct {
	Control core.ParameterControl
	Top     int
	Buttons []Button
}

// Layout places controls in a panel of the given width. Float controls
// take one line with -/+ buttons on the right; choice controls take a
// label line and a row of option buttons beneath it.
type Layout struct {
	Width  int
	Rows   []Row
	Bottom int
}

// NewLayout computes button rectangles for controls.
func NewLayout(width int, controls []core.ParameterControl) Layout {
	l := Layout{Width: width}
	top := controlsTop
	for _, ctrl := range controls {
		row := Row{Control: ctrl, Top: top}
		switch ctrl.Type {
		case core.ParamTypeFloat, core.ParamTypeInt:
			buttonY := top + (lineHeight-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
			minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
			row.Buttons = []Button{
				{Rect: minus, Label: "-", Key: ctrl.Key, Dir: -1},
				{Rect: plus, Label: "+", Key: ctrl.Key, Dir: 1},
			}
			top += lineHeight
		case core.ParamTypeChoice:
			n := len(ctrl.Options)
			if n == 0 {
				top += lineHeight
				break
			}
			span := width - 2*panelPadding - (n-1)*buttonGap
			w := span / n
			y := top + lineHeight - buttonGap
			for i, opt := range ctrl.Options {
				x := panelPadding + i*(w+buttonGap)
				row.Buttons = append(row.Buttons, Button{
					Rect:   image.Rect(x, y, x+w, y+buttonSize),
					Label:  opt,
					Key:    ctrl.Key,
					Option: opt,
				})
			}
			top = y + buttonSize + buttonGap
		default:
			top += lineHeight
		}
		l.Rows = append(l.Rows, row)
	}
	l.Bottom = top
	return l
}

// Hit returns the button under (x, y), in panel coordinates.
func (l Layout) Hit(x, y int) (Button, bool) {
	for _, row := range l.Rows {
		for _, b := range row.Buttons {
			if pointInRect(x, y, b.Rect) {
				return b, true
			}
		}
	}
	return Button{}, false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// Step returns the value one step from current in direction, clamped to
// the control bounds, and whether it differs from current.
func Step(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.Max > ctrl.Min {
		target = core.Clamp(target, ctrl.Min, ctrl.Max)
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

// FormatFloat prints v with a precision that matches the control step.
func FormatFloat(ctrl core.ParameterControl, v float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
