package imaging

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrSizeMismatch is returned when two layers do not share dimensions.
var ErrSizeMismatch = errors.New("layer dimensions differ")

// Blend composites overlay onto base with the Porter-Duff "over" operator,
// writing the result into base.
//
// Where overlay is fully opaque the base pixel is replaced; where it is fully
// transparent the base pixel is left untouched; anything in between is mixed
// using the overlay alpha. overlay itself is not modified and can be dropped
// by the caller afterwards.
//
// Callers are expected to size both layers identically before blending. A
// mismatch is still reported instead of producing a partially blended image.
func Blend(base draw.Image, overlay image.Image) error {
	bb, ob := base.Bounds(), overlay.Bounds()
	if bb.Dx() != ob.Dx() || bb.Dy() != ob.Dy() {
		return fmt.Errorf("%w: base %dx%d, overlay %dx%d",
			ErrSizeMismatch, bb.Dx(), bb.Dy(), ob.Dx(), ob.Dy())
	}

	draw.Draw(base, bb, overlay, ob.Min, draw.Over)
	return nil
}
