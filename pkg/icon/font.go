package icon

import (
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontResolution reports which font the renderer ended up drawing with,
// so callers (and tests) can tell when the bitmap fallback fired.
type FontResolution struct {
	Path    string
	Builtin bool
}

var boldFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	`C:\Windows\Fonts\arialbd.ttf`,
	`C:\Windows\Fonts\arial.ttf`,
}

var regularFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	`C:\Windows\Fonts\arial.ttf`,
}

// resolveFontFace picks the first candidate font file that exists on
// this system and loads it at the given point size. A missing candidate
// list or a load failure both resolve to the built-in bitmap face.
func resolveFontFace(bold bool, points float64) (font.Face, FontResolution) {
	candidates := regularFontCandidates
	if bold {
		candidates = boldFontCandidates
	}

	path := ""
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return basicfont.Face7x13, FontResolution{Builtin: true}
	}

	face, err := gg.LoadFontFace(path, points)
	if err != nil {
		return basicfont.Face7x13, FontResolution{Builtin: true}
	}
	return face, FontResolution{Path: path}
}
