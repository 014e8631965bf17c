package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrInvalidSize is returned for non-positive target dimensions and negative
// padding amounts.
var ErrInvalidSize = errors.New("invalid size")

// Resize scales img to exactly width x height using nearest-neighbor
// sampling.
//
// Every output pixel copies the source pixel at the corresponding position
// under uniform scaling; no colors are mixed. Both dimensions must be
// positive. Unlike imaging.Resize, a zero dimension is never treated as
// "preserve aspect ratio".
func Resize(img image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", ErrInvalidSize, width, height)
	}
	return imaging.Resize(img, width, height, imaging.NearestNeighbor), nil
}
