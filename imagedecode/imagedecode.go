// Package imagedecode decodes the pixel formats Levikno's glTF loader and
// texture-from-file entry points accept (PNG, JPEG, BMP) into the flat
// RGBA8 byte buffers gal.TextureCreateInfo.Pixels expects. It mirrors
// gazed-vu/load's "Reader in, ImgData out" shape, generalized from a single
// format-specific function (Png) to one entry point that sniffs the actual
// format via filetype before picking a decoder, since glTF images arrive
// either by URI (extension may lie) or by buffer-view blob (no extension at
// all).
package imagedecode

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
)

// Image is a decoded, always-RGBA8 image ready for gal.TextureCreateInfo.
type Image struct {
	Width, Height int
	Pixels        []byte // RGBA8, row-major, no padding
}

// Decode sniffs data's format and decodes it into an Image. It accepts any
// format the blank-imported decoders above register (PNG, JPEG, BMP),
// matching the "mimeType ∈ {image/jpeg, image/png}" glTF names plus BMP for
// textures loaded outside the glTF path.
func Decode(data []byte) (Image, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return Image{}, fmt.Errorf("imagedecode: %w", err)
	}
	if kind == filetype.Unknown {
		return Image{}, fmt.Errorf("imagedecode: unrecognized image format")
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("imagedecode: %s: %w", kind.MIME.Value, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	return Image{Width: w, Height: h, Pixels: rgba.Pix}, nil
}
