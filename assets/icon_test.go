package assets

import (
	"bytes"
	"image/png"
	"testing"
)

func TestIconBaseSize(t *testing.T) {
	img, err := Icon(64)
	if err != nil {
		t.Fatalf("Icon failed: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("expected 64x64 icon, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestIconScaled(t *testing.T) {
	for _, size := range []int{16, 32, 128} {
		img, err := Icon(size)
		if err != nil {
			t.Fatalf("Icon(%d) failed: %v", size, err)
		}
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Icon(%d): got %dx%d", size, b.Dx(), b.Dy())
		}
	}
}

func TestIconInvalidSize(t *testing.T) {
	if _, err := Icon(0); err == nil {
		t.Error("expected error for size 0")
	}
	if _, err := Icon(-8); err == nil {
		t.Error("expected error for negative size")
	}
}

func TestIconPNGDecodes(t *testing.T) {
	data, err := IconPNG(64)
	if err != nil {
		t.Fatalf("IconPNG failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("produced PNG does not decode: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("decoded PNG has width %d, want 64", img.Bounds().Dx())
	}
}

func TestIconNotEmpty(t *testing.T) {
	img, err := Icon(64)
	if err != nil {
		t.Fatalf("Icon failed: %v", err)
	}
	// The lens center must be opaque; a fully transparent icon means
	// the render produced nothing.
	_, _, _, a := img.At(32, 35).RGBA()
	if a == 0 {
		t.Error("icon center is transparent")
	}
}
