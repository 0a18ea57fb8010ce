// Package font is Levikno's font rasterization facade (spec.md's
// out-of-scope "font rasterization": TTF bytes to a glyph atlas). It
// wraps github.com/goki/freetype (a fork of the original freetype-go,
// API-compatible with golang.org/x/image/font/truetype) to parse a TTF and
// rasterize a fixed rune set into a single packed RGBA atlas, the same
// "one bitmap image holding every character" shape gazed-vu's font.go
// consumes, except this package also does the rasterization gazed-vu left
// to an offline tool.
package font

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/goki/freetype/truetype"
	"golang.org/x/image/math/fixed"
)

// Glyph is one rasterized character's placement within Atlas.Image plus
// the layout metrics needed to lay out a run of text, the rasterized
// equivalent of gazed-vu/font.go's char.
type Glyph struct {
	X, Y, W, H int // Pixel rect within Atlas.Image.
	OffsetX    int // Horizontal bearing: left edge relative to the pen.
	OffsetY    int // Vertical bearing: top edge relative to the baseline.
	Advance    int // Pen advance after drawing this glyph.
}

// Atlas is a TTF rasterized at one size into a single packed image, the
// glyph-atlas spec.md's Data Model names in passing ("TTF → glyph atlas").
type Atlas struct {
	Name   string
	Image  *image.RGBA
	Glyphs map[rune]Glyph
}

// DefaultRunes is the printable ASCII range, a reasonable default rune set
// for a UI/debug font when the caller has no specific charset in mind.
func DefaultRunes() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(' '); r <= rune('~'); r++ {
		runes = append(runes, r)
	}
	return runes
}

// Load parses ttfData and rasterizes runes at the given point size and DPI
// into a single atlas image, packed left-to-right top-to-bottom with a
// 1px gutter between glyphs to avoid bilinear-filter bleed when the atlas
// is later sampled as a gal.Texture.
func Load(name string, ttfData []byte, size, dpi float64, runes []rune) (*Atlas, error) {
	parsed, err := truetype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("font: parse %q: %w", name, err)
	}
	face := truetype.NewFace(parsed, &truetype.Options{
		Size: size,
		DPI:  dpi,
	})
	defer face.Close()

	const gutter = 1
	const maxWidth = 1024

	type placed struct {
		r                rune
		mask             image.Image
		maskP            image.Point
		dr               image.Rectangle
		bearingX, bearingY int
		advance          int
	}
	var glyphs []placed
	for _, r := range runes {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, placed{
			r: r, mask: mask, maskP: maskp, dr: dr,
			bearingX: dr.Min.X, bearingY: dr.Min.Y,
			advance: int(adv.Round()),
		})
	}

	cursorX, cursorY, rowHeight, atlasWidth := 0, 0, 0, 0
	for i := range glyphs {
		w := glyphs[i].dr.Dx()
		h := glyphs[i].dr.Dy()
		if cursorX+w+gutter > maxWidth {
			cursorX = 0
			cursorY += rowHeight + gutter
			rowHeight = 0
		}
		glyphs[i].dr = image.Rect(cursorX, cursorY, cursorX+w, cursorY+h)
		cursorX += w + gutter
		if h > rowHeight {
			rowHeight = h
		}
		if cursorX > atlasWidth {
			atlasWidth = cursorX
		}
	}
	atlasHeight := cursorY + rowHeight

	if atlasWidth == 0 {
		atlasWidth = 1
	}
	if atlasHeight == 0 {
		atlasHeight = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, atlasWidth, atlasHeight))
	out := &Atlas{Name: name, Image: img, Glyphs: make(map[rune]Glyph, len(glyphs))}

	for _, g := range glyphs {
		if g.mask != nil {
			draw.DrawMask(img, g.dr, image.White, image.Point{}, g.mask, g.maskP, draw.Over)
		}
		out.Glyphs[g.r] = Glyph{
			X: g.dr.Min.X, Y: g.dr.Min.Y, W: g.dr.Dx(), H: g.dr.Dy(),
			OffsetX: g.bearingX, OffsetY: g.bearingY,
			Advance: g.advance,
		}
	}
	return out, nil
}

// UV returns r's normalized texture-coordinate rect within a.Image,
// following gazed-vu/font.go's uvs winding (lower-left, lower-right,
// upper-right, upper-left) so a quad built from it appears right-side up.
func (a *Atlas) UV(r rune) (uvs [8]float32, ok bool) {
	g, ok := a.Glyphs[r]
	if !ok {
		return uvs, false
	}
	w, h := float32(a.Image.Bounds().Dx()), float32(a.Image.Bounds().Dy())
	x0, y0 := float32(g.X)/w, float32(g.Y)/h
	x1, y1 := float32(g.X+g.W)/w, float32(g.Y+g.H)/h
	uvs = [8]float32{
		x0, y1, // lower left
		x1, y1, // lower right
		x1, y0, // upper right
		x0, y0, // upper left
	}
	return uvs, true
}

// MeasureString returns the pixel width a string would occupy in atlas a,
// summing each rune's advance the way gazed-vu/font.go's Panel does while
// building its vertex buffer.
func (a *Atlas) MeasureString(s string) int {
	width := 0
	for _, r := range s {
		if g, ok := a.Glyphs[r]; ok {
			width += g.Advance
		}
	}
	return width
}
