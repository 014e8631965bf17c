package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

var (
	// ErrInvalidRegion is returned for regions with zero or negative area.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrOutOfBounds is returned when a region does not fit inside the image.
	ErrOutOfBounds = errors.New("region outside image bounds")
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int // Left edge X coordinate (inclusive)
	Y1 int // Top edge Y coordinate (inclusive)
	X2 int // Right edge X coordinate (exclusive)
	Y2 int // Bottom edge Y coordinate (exclusive)
}

// Width returns the horizontal extent of the region.
func (r Region) Width() int { return r.X2 - r.X1 }

// Height returns the vertical extent of the region.
func (r Region) Height() int { return r.Y2 - r.Y1 }

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

// Crop extracts a rectangular region from an image.
//
// The returned image has its origin at (0,0) and holds exactly the pixels of
// the region with their RGBA values unchanged. The source is not modified.
// Regions are never clamped: a region that leaves the image is an error.
func Crop(img image.Image, r Region) (*image.NRGBA, error) {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("%w: %s: x1 must be < x2, y1 must be < y2", ErrInvalidRegion, r)
	}

	bounds := img.Bounds()
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("%w: crop region %s, image (%d,%d)-(%d,%d)",
			ErrOutOfBounds, r, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	return imaging.Crop(img, r.Rect()), nil
}
