package icon

import (
	"fmt"
	"image"
	"math/rand"
	"strconv"
	"strings"
)

// Palette is a preset background/text color pair.
type Palette struct {
	Background RGB
	Text       RGB
}

// Palettes are the presets offered for styled generation.
var Palettes = []Palette{
	{Background: RGB{66, 133, 244}, Text: RGB{255, 255, 255}}, // blue
	{Background: RGB{219, 68, 55}, Text: RGB{255, 255, 255}},  // red
	{Background: RGB{244, 81, 30}, Text: RGB{255, 255, 255}},  // orange
	{Background: RGB{251, 188, 5}, Text: RGB{50, 50, 50}},     // yellow
	{Background: RGB{52, 168, 83}, Text: RGB{255, 255, 255}},  // green
	{Background: RGB{156, 39, 176}, Text: RGB{255, 255, 255}}, // purple
	{Background: RGB{0, 150, 136}, Text: RGB{255, 255, 255}},  // teal
	{Background: RGB{63, 81, 181}, Text: RGB{255, 255, 255}},  // indigo
	{Background: RGB{233, 30, 99}, Text: RGB{255, 255, 255}},  // pink
	{Background: RGB{76, 175, 80}, Text: RGB{255, 255, 255}},  // light green
}

// RenderStyled renders with a preset palette and the gradient enabled.
// Style "auto" (or empty) picks a random palette, "palette_1" through
// "palette_10" pick a specific one.
func (r *Renderer) RenderStyled(appName, style string) (*image.RGBA, FontResolution, error) {
	palette, err := paletteForStyle(style)
	if err != nil {
		return nil, FontResolution{}, err
	}
	img, resolution := r.Render(appName, Options{
		Background: palette.Background,
		Text:       palette.Text,
		Gradient:   true,
	})
	return img, resolution, nil
}

func paletteForStyle(style string) (Palette, error) {
	if style == "" || style == "auto" {
		return Palettes[rand.Intn(len(Palettes))], nil
	}
	rest, ok := strings.CutPrefix(style, "palette_")
	if !ok {
		return Palette{}, fmt.Errorf("unknown icon style %q", style)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return Palette{}, fmt.Errorf("unknown icon style %q", style)
	}
	return Palettes[(n-1)%len(Palettes)], nil
}
