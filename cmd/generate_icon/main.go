package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"pylauncher/pkg/icon"
)

func main() {
	name := flag.String("name", "Py Launcher", "application name the initials are taken from")
	bg := flag.String("bg", "", "background color as #rrggbb (default blue)")
	fg := flag.String("fg", "", "text color as #rrggbb (default white)")
	bold := flag.Bool("bold", false, "use a bold font for the initials")
	gradient := flag.Bool("gradient", false, "darken the background top to bottom")
	style := flag.String("style", "", "palette style: auto or palette_1..palette_10 (overrides colors)")
	size := flag.Int("size", icon.DefaultSize, "icon size in pixels")
	out := flag.String("out", "icon.png", "output PNG path")
	flag.Parse()

	renderer := icon.NewRenderer(*size)

	img := renderIcon(renderer, *name, *style, *bg, *fg, *bold, *gradient)
	if err := icon.SavePNG(img, *out); err != nil {
		log.Fatal("Failed to write icon:", err)
	}
	fmt.Println("Icon generated successfully:", *out)
}

func renderIcon(renderer *icon.Renderer, name, style, bg, fg string, bold, gradient bool) *image.RGBA {
	if style != "" {
		img, font, err := renderer.RenderStyled(name, style)
		if err != nil {
			log.Fatal("Invalid style:", err)
		}
		warnBuiltin(font)
		return img
	}

	opts := icon.Options{
		Background: icon.DefaultBackground,
		Text:       icon.DefaultText,
		Bold:       bold,
		Gradient:   gradient,
	}
	var err error
	if bg != "" {
		if opts.Background, err = icon.ParseHex(bg); err != nil {
			log.Fatal("Invalid background color:", err)
		}
	}
	if fg != "" {
		if opts.Text, err = icon.ParseHex(fg); err != nil {
			log.Fatal("Invalid text color:", err)
		}
	}

	img, font := renderer.Render(name, opts)
	warnBuiltin(font)
	return img
}

func warnBuiltin(font icon.FontResolution) {
	if font.Builtin {
		log.Print("No TrueType font found, using builtin bitmap font")
	}
}
