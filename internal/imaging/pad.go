package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// PadUniform returns a copy of img grown by pad pixels on every side.
//
// The result measures (w+2*pad) x (h+2*pad) with the original centered and
// every added border pixel set to Transparent. A pad of zero yields a plain
// copy.
func PadUniform(img image.Image, pad int) (*image.RGBA, error) {
	if pad < 0 {
		return nil, fmt.Errorf("%w: negative padding %d", ErrInvalidSize, pad)
	}
	return clone.Pad(img, pad, pad, clone.NoFill), nil
}
