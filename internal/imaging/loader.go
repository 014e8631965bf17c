package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrDecode is returned when texture bytes cannot be decoded as an image.
var ErrDecode = errors.New("failed to decode image")

// Decode decodes texture bytes into a SourceImage.
//
// Supported formats are PNG, JPEG, GIF, BMP and WebP. Whatever the stored
// color model, the result is normalized to 8-bit non-premultiplied RGBA with
// its origin at (0,0), which is what the fixed skin regions assume.
func Decode(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return imaging.Clone(img), nil
}

// EncodePNG encodes img as PNG bytes.
//
// The encoder is deterministic: the same image always yields the same bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of img.
func GetDimensions(img image.Image) DimensionsResult {
	b := img.Bounds()
	return DimensionsResult{Width: b.Dx(), Height: b.Dy()}
}
