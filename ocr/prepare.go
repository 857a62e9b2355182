package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"

	// Register the extra decoders image.Decode needs for scanned inputs.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedImage is returned when image data cannot be decoded.
var ErrUnsupportedImage = errors.New("unsupported image")

// DefaultMinHeight is the pixel height Prepare scales small scans up to.
const DefaultMinHeight = 300

// Prepare converts a scanned image into the form Tesseract reads best:
// grayscale PNG, upscaled so it is at least minHeight pixels tall. Images
// already tall enough keep their size. A minHeight below 1 disables scaling.
func Prepare(imageData []byte, minHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	src := img.Bounds()
	if src.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrUnsupportedImage)
	}

	w, h := src.Dx(), src.Dy()
	if minHeight > h {
		w = w * minHeight / h
		h = minHeight
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	if h == src.Dy() {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encoding prepared image: %w", err)
	}
	return buf.Bytes(), nil
}
