package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeUncompressed = 2
	TGATypeRLE          = 10
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes an uncompressed or RLE true-color TGA image with 24 or
// 32 bits per pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("tga: header too short (%d bytes)", len(data))
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	w := &tgaWriter{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		width:       width,
		height:      height,
		topToBottom: descriptor&0x20 != 0,
	}
	r := &tgaReader{data: data[offset:], bytesPerPixel: bpp / 8}

	var err error
	if imageType == TGATypeUncompressed {
		err = decodeTGARaw(w, r)
	} else {
		err = decodeTGARLE(w, r)
	}
	if err != nil {
		return nil, err
	}
	return w.img, nil
}

type tgaReader struct {
	data          []byte
	pos           int
	bytesPerPixel int
}

// pixel reads one BGR(A) pixel.
func (r *tgaReader) pixel() (color.RGBA, bool) {
	if r.pos+r.bytesPerPixel > len(r.data) {
		return color.RGBA{}, false
	}
	p := r.data[r.pos:]
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bytesPerPixel == 4 {
		c.A = p[3]
	}
	r.pos += r.bytesPerPixel
	return c, true
}

func (r *tgaReader) byte() (byte, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	b := r.data[r.pos]
	r.pos++
	return b, true
}

// tgaWriter places pixels in file order, flipping rows for bottom-up images.
type tgaWriter struct {
	img         *image.RGBA
	width       int
	height      int
	topToBottom bool
	n           int
}

func (w *tgaWriter) full() bool {
	return w.n >= w.width*w.height
}

func (w *tgaWriter) put(c color.RGBA) {
	x := w.n % w.width
	y := w.n / w.width
	if !w.topToBottom {
		y = w.height - 1 - y
	}
	w.img.SetRGBA(x, y, c)
	w.n++
}

func decodeTGARaw(w *tgaWriter, r *tgaReader) error {
	for !w.full() {
		c, ok := r.pixel()
		if !ok {
			return errTGATruncated
		}
		w.put(c)
	}
	return nil
}

// decodeTGARLE stops quietly at the end of the data, leaving the remaining
// pixels transparent.
func decodeTGARLE(w *tgaWriter, r *tgaReader) error {
	for !w.full() {
		header, ok := r.byte()
		if !ok {
			return nil
		}
		count := int(header&0x7F) + 1

		if header&0x80 != 0 {
			c, ok := r.pixel()
			if !ok {
				return nil
			}
			for i := 0; i < count && !w.full(); i++ {
				w.put(c)
			}
			continue
		}

		for i := 0; i < count && !w.full(); i++ {
			c, ok := r.pixel()
			if !ok {
				return nil
			}
			w.put(c)
		}
	}
	return nil
}
