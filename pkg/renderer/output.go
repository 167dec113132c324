package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WritePPM writes img as a plain-text P3 PPM, one pixel per line
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	out := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(out, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(out, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}

// WritePNG writes img as a PNG
func WritePNG(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}

// SaveImage writes img to path, choosing the format from the extension
func SaveImage(path string, img *image.RGBA) (err error) {
	var encode func(io.Writer, *image.RGBA) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		encode = WritePPM
	case ".png":
		encode = WritePNG
	default:
		return fmt.Errorf("unsupported output format %q (want .ppm or .png)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return encode(f, img)
}
