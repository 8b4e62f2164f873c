package debug

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

// twoRows is a 1x2 framebuffer read: bottom row red, top row blue.
func twoRows() []byte {
	return []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
}

func TestFlipRGBA(t *testing.T) {
	img, err := FlipRGBA(twoRows(), 1, 2)
	if err != nil {
		t.Fatalf("FlipRGBA: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipRGBAErrors(t *testing.T) {
	tests := []struct {
		name   string
		pixels []byte
		w, h   int
	}{
		{"size mismatch", make([]byte, 7), 1, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FlipRGBA(tt.pixels, tt.w, tt.h); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCaptureFormats(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	for _, format := range []string{"png", "bmp"} {
		t.Run(format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "shots")
			sc := NewScreenshotCapture(dir, "spinlight", format)
			sc.now = func() time.Time { return fixed }

			path, err := sc.CaptureFromPixels(twoRows(), 1, 2)
			if err != nil {
				t.Fatalf("CaptureFromPixels: %v", err)
			}
			want := filepath.Join(dir, "spinlight_2024-03-01_12-30-45.000."+format)
			if path != want {
				t.Errorf("path = %q, want %q", path, want)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()
			img, gotFormat, err := image.Decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if gotFormat != format {
				t.Errorf("decoded format = %q, want %q", gotFormat, format)
			}
			if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 2 {
				t.Errorf("bounds = %v", img.Bounds())
			}
			r, _, b, _ := img.At(0, 0).RGBA()
			if r != 0 || b == 0 {
				t.Errorf("top pixel is not blue")
			}
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := Encode(&buf, img, "gif"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestEncodeBMPDecodes(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	if err := Encode(&buf, img, "bmp"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	cfg, err := bmp.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 3 || cfg.Height != 2 {
		t.Errorf("config = %dx%d, want 3x2", cfg.Width, cfg.Height)
	}
}

func TestDefaultFormatIsPNG(t *testing.T) {
	sc := NewScreenshotCapture("", "x", "")
	if sc.format != "png" {
		t.Errorf("format = %q, want png", sc.format)
	}
}
