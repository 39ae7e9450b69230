// Package texture decodes texture images and prepares them for upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type decodeFunc func([]byte) (image.Image, error)

func reader(fn func(r *bytes.Reader) (image.Image, error)) decodeFunc {
	return func(data []byte) (image.Image, error) {
		return fn(bytes.NewReader(data))
	}
}

var decoders = map[string]decodeFunc{
	".png":  reader(func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) }),
	".jpg":  reader(func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) }),
	".jpeg": reader(func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) }),
	".gif":  reader(func(r *bytes.Reader) (image.Image, error) { return gif.Decode(r) }),
	".bmp":  reader(func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) }),
	".webp": reader(func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) }),
	".tif":  reader(func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) }),
	".tiff": reader(func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) }),
	".tga":  DecodeTGA,
}

// SupportedExtensions lists the file extensions Decode understands.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(decoders))
	for ext := range decoders {
		exts = append(exts, ext)
	}
	return exts
}

// Decode decodes image data, choosing the decoder from name's extension.
// Unknown extensions fall back to content sniffing.
func Decode(data []byte, name string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if dec, ok := decoders[ext]; ok {
		img, err := dec(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// ToRGBA converts img to tightly packed RGBA. With flipY the rows are
// reversed so row 0 is the bottom of the image, as OpenGL expects.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if !flipY {
		return rgba
	}

	stride := rgba.Stride
	row := make([]byte, stride)
	for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := rgba.Pix[top*stride : (top+1)*stride]
		bt := rgba.Pix[bottom*stride : (bottom+1)*stride]
		copy(row, t)
		copy(t, bt)
		copy(bt, row)
	}
	return rgba
}

// Solid returns a 1x1 image of c. The scene uses a white one as the default
// texture so untextured objects show their lit color.
func Solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return img
}
