package font

import (
	"image"
	"testing"
)

func TestLoadRejectsInvalidTTF(t *testing.T) {
	if _, err := Load("bad", []byte("not a ttf file"), 12, 72, DefaultRunes()); err == nil {
		t.Fatalf("expected an error parsing non-TTF bytes")
	}
}

func TestAtlasMeasureString(t *testing.T) {
	a := &Atlas{
		Name:  "test",
		Image: image.NewRGBA(image.Rect(0, 0, 16, 16)),
		Glyphs: map[rune]Glyph{
			'A': {X: 0, Y: 0, W: 4, H: 8, Advance: 5},
			'B': {X: 4, Y: 0, W: 4, H: 8, Advance: 6},
		},
	}
	if w := a.MeasureString("AB"); w != 11 {
		t.Fatalf("expected width 11, got %d", w)
	}
	if w := a.MeasureString("ABC"); w != 11 {
		t.Fatalf("expected unknown rune C to contribute 0 width, got %d", w)
	}
}

func TestAtlasUV(t *testing.T) {
	a := &Atlas{
		Image: image.NewRGBA(image.Rect(0, 0, 10, 10)),
		Glyphs: map[rune]Glyph{
			'A': {X: 0, Y: 0, W: 5, H: 5},
		},
	}
	uvs, ok := a.UV('A')
	if !ok {
		t.Fatalf("expected UV for bound rune")
	}
	want := [8]float32{0, 0.5, 0.5, 0.5, 0.5, 0, 0, 0}
	if uvs != want {
		t.Fatalf("unexpected uvs: got %v want %v", uvs, want)
	}
	if _, ok := a.UV('Z'); ok {
		t.Fatalf("expected no UV for unbound rune")
	}
}

func TestDefaultRunesCoversPrintableASCII(t *testing.T) {
	runes := DefaultRunes()
	if len(runes) != 95 {
		t.Fatalf("expected 95 printable ASCII runes, got %d", len(runes))
	}
	if runes[0] != ' ' || runes[len(runes)-1] != '~' {
		t.Fatalf("expected range [' ', '~'], got [%q, %q]", runes[0], runes[len(runes)-1])
	}
}
