//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	helpLineHeight = 16
	helpPadding    = 16
	helpWidth      = 360
)

var (
	helpShade = color.RGBA{A: 150}
	helpBox   = color.RGBA{R: 24, G: 26, B: 32, A: 240}
	helpText  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// DrawHelp paints the modal help panel centered on screen when it is open.
func DrawHelp(screen *ebiten.Image, h *Help) {
	if !h.Open() {
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), helpShade, false)

	height := 2*helpPadding + len(HelpLines)*helpLineHeight
	x := (b.Dx() - helpWidth) / 2
	y := (b.Dy() - height) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), helpWidth, float32(height), helpBox, false)

	face := basicfont.Face7x13
	for i, line := range HelpLines {
		text.Draw(screen, line, face, x+helpPadding, y+helpPadding+(i+1)*helpLineHeight-4, helpText)
	}
}
