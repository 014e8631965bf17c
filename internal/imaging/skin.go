package imaging

import (
	"fmt"
	"image"
	"math"
)

// Fixed regions of the skin and cape texture layouts.
var (
	// CapeFrontRegion is the outside of the cape on a cape texture.
	CapeFrontRegion = Region{X1: 1, Y1: 1, X2: 11, Y2: 17}

	// CapeBackRegion is the inside of the cape, seen from behind the player.
	CapeBackRegion = Region{X1: 12, Y1: 1, X2: 22, Y2: 17}

	// HeadRegion is the front of the head on the base skin layer.
	HeadRegion = Region{X1: 8, Y1: 8, X2: 16, Y2: 16}

	// HatRegion is the front of the head on the overlay (hat) layer.
	HatRegion = Region{X1: 40, Y1: 8, X2: 48, Y2: 16}
)

// Defaults used when a request does not carry an explicit size.
const (
	DefaultCapeWidth = 80
	DefaultFaceSize  = 64
)

// capeAspect is the cape height to width ratio (16 / 10).
const capeAspect = 1.6

// CapeHeight returns the output height for a cape rendered width pixels wide,
// rounded to the nearest pixel.
func CapeHeight(width int) int {
	return int(math.Round(float64(width) * capeAspect))
}

// FaceLayout describes how the layered face is assembled on a size x size
// canvas.
type FaceLayout struct {
	// Size is the edge of the final canvas and of the scaled hat layer.
	Size int

	// Inner is the edge the head layer is scaled to before padding.
	Inner int

	// Pad is the transparent border added around the head layer.
	Pad int
}

// NewFaceLayout computes the layered face geometry for size.
//
// The head is inset by size/8 (integer division) split evenly on both sides,
// so Pad = (size/8)/2 and Inner = size - 2*Pad. Inner+2*Pad always equals
// Size, which keeps both layers the same size for Blend even when size is
// not a multiple of 16.
func NewFaceLayout(size int) FaceLayout {
	pad := (size / 8) / 2
	return FaceLayout{
		Size:  size,
		Inner: size - 2*pad,
		Pad:   pad,
	}
}

// Cape renders the front (or, with back set, the inside) of a cape texture
// as a width x CapeHeight(width) image.
func Cape(src image.Image, width int, back bool) (image.Image, error) {
	region := CapeFrontRegion
	if back {
		region = CapeBackRegion
	}

	cropped, err := Crop(src, region)
	if err != nil {
		return nil, fmt.Errorf("failed to crop cape: %w", err)
	}

	resized, err := Resize(cropped, width, CapeHeight(width))
	if err != nil {
		return nil, fmt.Errorf("failed to resize cape: %w", err)
	}

	return resized, nil
}

// Face renders the front of the head as a size x size image.
//
// Without layers the head is simply scaled to the full canvas. With layers
// the head is scaled slightly smaller and centered on a transparent canvas,
// then the hat layer, scaled to the full canvas, is blended over it. The
// inset lets the hat visually stand out from the head like it does in game.
func Face(src image.Image, size int, layers bool) (image.Image, error) {
	head, err := Crop(src, HeadRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to crop head: %w", err)
	}

	if !layers {
		face, err := Resize(head, size, size)
		if err != nil {
			return nil, fmt.Errorf("failed to resize head: %w", err)
		}
		return face, nil
	}

	if size <= 0 {
		return nil, fmt.Errorf("%w: face size %d", ErrInvalidSize, size)
	}
	layout := NewFaceLayout(size)

	inner, err := Resize(head, layout.Inner, layout.Inner)
	if err != nil {
		return nil, fmt.Errorf("failed to resize head: %w", err)
	}

	face, err := PadUniform(inner, layout.Pad)
	if err != nil {
		return nil, fmt.Errorf("failed to pad head: %w", err)
	}

	hat, err := Crop(src, HatRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to crop hat: %w", err)
	}

	overlay, err := Resize(hat, layout.Size, layout.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to resize hat: %w", err)
	}

	if err := Blend(face, overlay); err != nil {
		return nil, fmt.Errorf("failed to blend hat: %w", err)
	}

	return face, nil
}
