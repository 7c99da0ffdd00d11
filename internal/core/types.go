package core

import "image/color"

// Color is a 0xRRGGBB value, the notation the scene palette is written in.
type Color uint32

// ToRGBA converts the color to an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255}
}

// Floats returns the channels scaled to [0, 1].
func (c Color) Floats() (r, g, b float64) {
	return float64(uint8(c>>16)) / 255, float64(uint8(c>>8)) / 255, float64(uint8(c)) / 255
}
