package icon

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a hex color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#RRGGBB" or "RRGGBB". The leading '#' is optional;
// anything other than exactly six hex digits after it is rejected.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 24)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex renders the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten raises the HSV value channel by an absolute factor (0.0-1.0),
// clamped to 1.0.
func Lighten(c RGB, factor float64) RGB {
	h, s, v := toColorful(c).Hsv()
	return fromHSV(h, s, math.Min(1.0, v+factor))
}

// Darken lowers the HSV value channel by an absolute factor (0.0-1.0),
// clamped to 0.0.
func Darken(c RGB, factor float64) RGB {
	h, s, v := toColorful(c).Hsv()
	return fromHSV(h, s, math.Max(0.0, v-factor))
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromHSV(h, s, v float64) RGB {
	c := colorful.Hsv(h, s, v)
	return RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B)}
}

func channel(f float64) uint8 {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return uint8(math.Round(f * 255.0))
}
