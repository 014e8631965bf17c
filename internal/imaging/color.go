package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
//
// Components are non-premultiplied.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// Transparent is the fill used for padding borders.
var Transparent = RGBAColor{0, 0, 0, 0}

// NRGBA converts c to the standard library color type.
func (c RGBAColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats the color as "#RRGGBBAA".
func (c RGBAColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// SampleColor returns the non-premultiplied color at (x, y).
//
// Coordinates are absolute, so they are checked against img.Bounds() rather
// than assuming an origin at (0,0).
func SampleColor(img image.Image, x, y int) (RGBAColor, error) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return RGBAColor{}, fmt.Errorf("%w: coordinates (%d,%d)", ErrOutOfBounds, x, y)
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}
