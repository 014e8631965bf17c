package imaging

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestRender(t *testing.T) {
	skin := encodeTestImage(t, createSkin(true))
	cape := encodeTestImage(t, createCapeTexture())

	tests := []struct {
		name          string
		data          []byte
		op            Operation
		width, height int
	}{
		{"cape default", cape, CapeOptions{Width: DefaultCapeWidth}, 80, 128},
		{"cape back", cape, CapeOptions{Width: 10, Back: true}, 10, 16},
		{"face default", skin, FaceOptions{Size: DefaultFaceSize}, 64, 64},
		{"face no layers", skin, FaceOptions{Size: 64, NoLayers: true}, 64, 64},
		{"face odd size", skin, FaceOptions{Size: 50}, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Render(tt.data, tt.op)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			if result.Width != tt.width || result.Height != tt.height {
				t.Errorf("dimensions: got %dx%d, want %dx%d", result.Width, result.Height, tt.width, tt.height)
			}
			if result.MimeType != "image/png" {
				t.Errorf("MimeType: got %s, want image/png", result.MimeType)
			}

			cfg, err := png.DecodeConfig(bytes.NewReader(result.Data))
			if err != nil {
				t.Fatalf("output is not a PNG: %v", err)
			}
			if cfg.Width != tt.width || cfg.Height != tt.height {
				t.Errorf("encoded dimensions: got %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.width, tt.height)
			}
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	skin := encodeTestImage(t, createSkin(true))

	ops := []Operation{
		FaceOptions{Size: 64},
		FaceOptions{Size: 64, NoLayers: true},
		CapeOptions{Width: 80},
	}

	for _, op := range ops {
		first, err := Render(skin, op)
		if err != nil {
			t.Fatalf("Render(%s) failed: %v", op.Name(), err)
		}
		second, err := Render(skin, op)
		if err != nil {
			t.Fatalf("Render(%s) failed: %v", op.Name(), err)
		}
		if !bytes.Equal(first.Data, second.Data) {
			t.Errorf("Render(%s) is not deterministic", op.Name())
		}
	}
}

func TestRender_Errors(t *testing.T) {
	skin := encodeTestImage(t, createSkin(true))

	tests := []struct {
		name string
		data []byte
		op   Operation
		want error
	}{
		{"garbage", []byte("nope"), FaceOptions{Size: 64}, ErrDecode},
		{"zero face size", skin, FaceOptions{Size: 0}, ErrInvalidSize},
		{"zero cape width", skin, CapeOptions{Width: 0}, ErrInvalidSize},
		{"small texture", encodeTestImage(t, createPatternImage(4, 4)), CapeOptions{Width: 80}, ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.data, tt.op)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestOperation_Name(t *testing.T) {
	if got := (CapeOptions{}).Name(); got != "cape" {
		t.Errorf("CapeOptions.Name(): got %s", got)
	}
	if got := (FaceOptions{}).Name(); got != "face" {
		t.Errorf("FaceOptions.Name(): got %s", got)
	}
}
