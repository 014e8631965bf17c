package imaging

import (
	"fmt"
	"image"
)

// Operation derives an avatar image from a decoded texture.
type Operation interface {
	// Name identifies the operation in logs and metrics.
	Name() string

	// Apply runs the operation against src. It must not modify src.
	Apply(src image.Image) (image.Image, error)
}

// CapeOptions selects the cape operation.
type CapeOptions struct {
	Width int  // Output width; height is CapeHeight(Width)
	Back  bool // Render the inside of the cape instead of the outside
}

// Name implements Operation.
func (o CapeOptions) Name() string { return "cape" }

// Apply implements Operation.
func (o CapeOptions) Apply(src image.Image) (image.Image, error) {
	return Cape(src, o.Width, o.Back)
}

// FaceOptions selects the face operation.
type FaceOptions struct {
	Size     int  // Output edge length
	NoLayers bool // Skip the hat layer
}

// Name implements Operation.
func (o FaceOptions) Name() string { return "face" }

// Apply implements Operation.
func (o FaceOptions) Apply(src image.Image) (image.Image, error) {
	return Face(src, o.Size, !o.NoLayers)
}

// RenderResult contains an encoded avatar image.
type RenderResult struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Data     []byte `json:"-"`
	MimeType string `json:"mime_type"`
}

// Render decodes texture bytes, applies op and encodes the result as PNG.
//
// Render holds no state between calls, so identical inputs always produce
// byte-identical output.
func Render(data []byte, op Operation) (*RenderResult, error) {
	src, err := Decode(data)
	if err != nil {
		return nil, err
	}

	out, err := op.Apply(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name(), err)
	}

	encoded, err := EncodePNG(out)
	if err != nil {
		return nil, err
	}

	dims := GetDimensions(out)
	return &RenderResult{
		Width:    dims.Width,
		Height:   dims.Height,
		Data:     encoded,
		MimeType: "image/png",
	}, nil
}
