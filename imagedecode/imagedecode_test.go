package imagedecode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestDecodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 1, color.RGBA{0, 255, 0, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	out, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Width != 2 || out.Height != 2 {
		t.Fatalf("expected 2x2, got %dx%d", out.Width, out.Height)
	}
	if len(out.Pixels) != 2*2*4 {
		t.Fatalf("expected 16 bytes, got %d", len(out.Pixels))
	}
	if out.Pixels[0] != 255 || out.Pixels[3] != 255 {
		t.Fatalf("expected top-left pixel red, got %v", out.Pixels[0:4])
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Fatal("expected error decoding garbage input")
	}
}
