// Package preview renders height-map rasters as grayscale images.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/tsawler/anasys/model"
)

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	TIFF
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case TIFF:
		return "TIFF"
	default:
		return "Unknown"
	}
}

// FormatFromExt picks the encoding for a file name by extension.
func FormatFromExt(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return PNG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return PNG, fmt.Errorf("preview: unsupported image extension %q", filepath.Ext(filename))
}

// Options controls rendering.
type Options struct {
	// MaxSize bounds the longer side of the output in pixels. Zero keeps
	// the raster resolution.
	MaxSize int
}

// Gray16 maps the finite, unmasked samples of r linearly onto the full
// 16-bit range. Masked and non-finite pixels are black; a flat raster is
// mid-gray. Row 0 of the raster is the top row of the image.
func Gray16(r *model.Raster) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, r.XRes, r.YRes))
	lo, hi, ok := r.MinMax()
	if !ok {
		return img
	}

	span := hi - lo
	for row := 0; row < r.YRes; row++ {
		for col := 0; col < r.XRes; col++ {
			i := row*r.XRes + col
			v := r.Data[i]
			if r.Masked(i) || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			level := uint16(math.MaxUint16 / 2)
			if span > 0 {
				level = uint16(math.Round((v - lo) / span * math.MaxUint16))
			}
			img.SetGray16(col, row, color.Gray16{Y: level})
		}
	}
	return img
}

// Fit scales src down with Catmull-Rom so that neither side exceeds max,
// keeping the aspect ratio. Images already within bounds are returned
// unchanged.
func Fit(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if max <= 0 || (w <= max && h <= max) {
		return src
	}

	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}
	dw := int(math.Max(1, math.Round(float64(w)*scale)))
	dh := int(math.Max(1, math.Round(float64(h)*scale)))

	dst := image.NewGray16(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Render returns the preview image of r.
func Render(r *model.Raster, opts Options) image.Image {
	return Fit(Gray16(r), opts.MaxSize)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("preview: unsupported format %v", f)
}

// WriteFile renders r and writes it to path, choosing the encoding from
// the extension.
func WriteFile(path string, r *model.Raster, opts Options) error {
	f, err := FormatFromExt(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := Encode(out, Render(r, opts), f); err != nil {
		out.Close()
		return fmt.Errorf("preview: encoding %s: %w", filepath.Base(path), err)
	}
	return out.Close()
}

// FileName builds a file-system friendly name for img, such as
// "001-height.png".
func FileName(img *model.Image, ext string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, img.Title)
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = "image"
	}
	return fmt.Sprintf("%03d-%s%s", img.Index, slug, ext)
}
