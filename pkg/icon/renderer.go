package icon

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// DefaultSize is the side length of generated icons in pixels.
const DefaultSize = 256

var (
	DefaultBackground = RGB{R: 66, G: 133, B: 244}
	DefaultText       = RGB{R: 255, G: 255, B: 255}
)

// Options control how a single icon is composed.
type Options struct {
	Background RGB
	Text       RGB
	Bold       bool
	Gradient   bool
}

// DefaultOptions returns the blue-on-white flat composition.
func DefaultOptions() Options {
	return Options{Background: DefaultBackground, Text: DefaultText}
}

// Renderer draws square initials icons.
type Renderer struct {
	Size int
}

func NewRenderer(size int) *Renderer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Renderer{Size: size}
}

// Render composes the icon for appName: background (flat or vertical
// gradient), centered initials, and a subtle 2px border. The returned
// FontResolution names the font that was actually used.
func (r *Renderer) Render(appName string, opts Options) (*image.RGBA, FontResolution) {
	size := r.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	bg := opts.Background
	draw.Draw(img, img.Bounds(), &image.Uniform{rgba(bg)}, image.Point{}, draw.Src)

	if opts.Gradient {
		darker := Darken(bg, 0.15)
		for y := 0; y < size; y++ {
			ratio := float64(y) / float64(size)
			row := color.RGBA{
				R: lerp(bg.R, darker.R, ratio),
				G: lerp(bg.G, darker.G, ratio),
				B: lerp(bg.B, darker.B, ratio),
				A: 255,
			}
			for x := 0; x < size; x++ {
				img.SetRGBA(x, y, row)
			}
		}
	}

	face, resolution := resolveFontFace(opts.Bold, math.Round(float64(size)*0.5))
	text := Initials(appName)

	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(face)
	dc.SetRGB255(int(opts.Text.R), int(opts.Text.G), int(opts.Text.B))
	x, y := inkCenterOrigin(face, text, size)
	dc.DrawString(text, x, y)

	drawBorder(img, size, rgba(Darken(bg, 0.1)))

	return img, resolution
}

// inkCenterOrigin computes the baseline origin that centers the
// string's measured ink box on a size×size canvas. Centering on the
// measured box rather than the line height keeps all-caps initials at
// the true visual center.
func inkCenterOrigin(face font.Face, text string, size int) (float64, float64) {
	bounds, _ := font.BoundString(face, text)
	w := float64(bounds.Max.X-bounds.Min.X) / 64
	h := float64(bounds.Max.Y-bounds.Min.Y) / 64
	x := (float64(size)-w)/2 - float64(bounds.Min.X)/64
	y := (float64(size)-h)/2 - float64(bounds.Min.Y)/64
	return x, y
}

// drawBorder outlines the canvas edge with a 2px unfilled square.
func drawBorder(img *image.RGBA, size int, c color.RGBA) {
	for t := 0; t < 2; t++ {
		for x := t; x < size-t; x++ {
			img.SetRGBA(x, t, c)
			img.SetRGBA(x, size-1-t, c)
		}
		for y := t; y < size-t; y++ {
			img.SetRGBA(t, y, c)
			img.SetRGBA(size-1-t, y, c)
		}
	}
}

// SavePNG encodes the image to path, creating parent directories as
// needed. Fully opaque images encode as 24-bit RGB.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func rgba(c RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a)*(1-t) + float64(b)*t))
}
