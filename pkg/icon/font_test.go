package icon

import "testing"

func TestResolveFontFaceBuiltinFallback(t *testing.T) {
	savedBold, savedRegular := boldFontCandidates, regularFontCandidates
	t.Cleanup(func() {
		boldFontCandidates, regularFontCandidates = savedBold, savedRegular
	})
	boldFontCandidates = []string{"/nonexistent/bold.ttf"}
	regularFontCandidates = []string{"/nonexistent/regular.ttf"}

	for _, bold := range []bool{false, true} {
		face, resolution := resolveFontFace(bold, 32)
		if face == nil {
			t.Fatalf("bold=%t: no face resolved", bold)
		}
		if !resolution.Builtin || resolution.Path != "" {
			t.Errorf("bold=%t: resolution = %+v; want builtin fallback", bold, resolution)
		}
	}

	// Rendering still works on the fallback face.
	img, resolution := NewRenderer(32).Render("Demo", DefaultOptions())
	if img == nil || !resolution.Builtin {
		t.Errorf("render with no font candidates: resolution = %+v", resolution)
	}
}
