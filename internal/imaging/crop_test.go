package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestCrop(t *testing.T) {
	img := createPatternImage(100, 100)

	cropped, err := Crop(img, Region{0, 0, 50, 50})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	b := cropped.Bounds()
	if b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", b.Dx(), b.Dy())
	}
	if b.Min != (image.Point{}) {
		t.Errorf("origin: got %v, want (0,0)", b.Min)
	}
}

func TestCrop_ExactSubrange(t *testing.T) {
	img := createGradientImage(64, 64)

	cropped, err := Crop(img, CapeFrontRegion)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if b := cropped.Bounds(); b.Dx() != 10 || b.Dy() != 16 {
		t.Fatalf("dimensions: got %dx%d, want 10x16", b.Dx(), b.Dy())
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 10; x++ {
			want := gradientColor(x+1, y+1)
			if got := cropped.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCrop_DoesNotModifySource(t *testing.T) {
	img := createGradientImage(16, 16)
	before := append([]uint8(nil), img.Pix...)

	cropped, err := Crop(img, Region{0, 0, 8, 8})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	cropped.SetNRGBA(0, 0, color.NRGBA{1, 2, 3, 4})

	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("source modified at byte %d", i)
		}
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{255, 0, 0, 255})

	tests := []struct {
		name   string
		region Region
	}{
		{"negative x1", Region{-1, 0, 50, 50}},
		{"negative y1", Region{0, -1, 50, 50}},
		{"x2 past width", Region{0, 0, 101, 50}},
		{"y2 past height", Region{0, 0, 50, 101}},
		{"entirely outside", Region{200, 200, 210, 210}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, tt.region)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("expected ErrOutOfBounds, got %v", err)
			}
		})
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{255, 0, 0, 255})

	tests := []struct {
		name   string
		region Region
	}{
		{"x1 >= x2", Region{50, 0, 50, 50}},
		{"x1 > x2", Region{60, 0, 50, 50}},
		{"y1 >= y2", Region{0, 50, 50, 50}},
		{"y1 > y2", Region{0, 60, 50, 50}},
		{"zero area", Region{50, 50, 50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, tt.region)
			if !errors.Is(err, ErrInvalidRegion) {
				t.Errorf("expected ErrInvalidRegion, got %v", err)
			}
		})
	}
}

func TestCrop_FullImage(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{255, 0, 0, 255})

	cropped, err := Crop(img, Region{0, 0, 100, 100})
	if err != nil {
		t.Fatalf("Crop full image failed: %v", err)
	}

	if b := cropped.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", b.Dx(), b.Dy())
	}
}

func TestCrop_NonZeroOrigin(t *testing.T) {
	img := createGradientImage(64, 64).SubImage(image.Rect(8, 8, 64, 64)).(*image.NRGBA)

	if _, err := Crop(img, Region{0, 0, 8, 8}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds for region before origin, got %v", err)
	}

	cropped, err := Crop(img, HeadRegion)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if got := cropped.NRGBAAt(0, 0); got != gradientColor(8, 8) {
		t.Errorf("pixel (0,0): got %v, want %v", got, gradientColor(8, 8))
	}
}

func TestRegion_Dimensions(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		w, h   int
	}{
		{"cape front", CapeFrontRegion, 10, 16},
		{"cape back", CapeBackRegion, 10, 16},
		{"head", HeadRegion, 8, 8},
		{"hat", HatRegion, 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.region.Width() != tt.w || tt.region.Height() != tt.h {
				t.Errorf("got %dx%d, want %dx%d", tt.region.Width(), tt.region.Height(), tt.w, tt.h)
			}
		})
	}
}
