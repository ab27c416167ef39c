package deck

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestSlideImageDimensions(t *testing.T) {
	d := New()
	d.CreateSlide()

	img, err := d.SlideImage(0, nil)
	if err != nil {
		t.Fatalf("SlideImage: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 960 {
		t.Errorf("expected width 960, got %d", bounds.Dx())
	}
	// 10 x 7.5in canvas => 4:3 => 960:720
	if bounds.Dy() != 720 {
		t.Errorf("expected height 720, got %d", bounds.Dy())
	}
}

func TestSlideImageHeaderBand(t *testing.T) {
	c := NewComposer(nil)
	d := New()
	d.Append(c.ContentSlide("Rendered", []string{"bullet"}, ""))

	img, err := d.SlideImage(0, nil)
	if err != nil {
		t.Fatalf("SlideImage: %v", err)
	}

	// Sample inside the header band, away from any text.
	r, g, b, _ := img.At(900, 20).RGBA()
	got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	want := color.RGBA{R: 0x00, G: 0x70, B: 0xC0}
	if got != want {
		t.Errorf("header band pixel = %+v, want %+v", got, want)
	}

	// Below the band the canvas stays white.
	r, g, b, _ = img.At(900, 700).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("background pixel not white: %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestSlideImageDiagramBox(t *testing.T) {
	c := NewComposer(nil)
	d := New()
	d.Append(c.DiagramSlide("D", "A → B", nil))

	img, err := d.SlideImage(0, nil)
	if err != nil {
		t.Fatalf("SlideImage: %v", err)
	}

	// Diagram box spans 0.5..9.5in x, 1.5..4.0in y. Sample its middle right,
	// clear of the monospace text near the top-left inset.
	r, g, b, _ := img.At(880, 330).RGBA()
	got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	want := color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0}
	if got != want {
		t.Errorf("diagram box pixel = %+v, want %+v", got, want)
	}
}

func TestSlideImageOutOfRange(t *testing.T) {
	d := New()
	d.CreateSlide()
	if _, err := d.SlideImage(1, nil); err == nil {
		t.Error("expected error for out-of-range slide index")
	}
	if _, err := d.SlideImage(-1, nil); err == nil {
		t.Error("expected error for negative slide index")
	}
}

func TestWrapPreservesIndentation(t *testing.T) {
	face := basicfont.Face7x13
	black := color.RGBA{A: 255}

	// Indented bullet in the style of the content slides. Face7x13 is
	// 7px per glyph, so a 200px limit forces at least one wrap.
	text := "   → ML models predict task completion times for every picker"
	line := buildTextLine([]textRun{{text: text, face: face, color: black}}, HorizontalLeft)
	wrapped := wrapRunLine(line, 200)
	if len(wrapped) < 2 {
		t.Fatalf("expected wrapping, got %d line(s)", len(wrapped))
	}
	if got := wrapped[0].runs[0].text; got != "   " {
		t.Errorf("first line starts with %q, want the three-space indent", got)
	}

	// Internal space runs survive on the line they land on.
	art := "Forklift 1: ████████  ████████ (balanced)"
	artLine := buildTextLine([]textRun{{text: art, face: face, color: black}}, HorizontalLeft)
	var joined strings.Builder
	for _, l := range wrapRunLine(artLine, 220) {
		for _, r := range l.runs {
			joined.WriteString(r.text)
		}
	}
	if !strings.Contains(joined.String(), "████████  ████████") {
		t.Errorf("wrapped art lost its internal spacing: %q", joined.String())
	}
}

func TestWrapKeepsIndentOnOverflowingWord(t *testing.T) {
	face := basicfont.Face7x13
	black := color.RGBA{A: 255}

	// A single word wider than the frame must stay on the indented line
	// rather than shedding the leading spaces.
	line := buildTextLine([]textRun{{text: "    overflowingword", face: face, color: black}}, HorizontalLeft)
	wrapped := wrapRunLine(line, 50)
	if len(wrapped) != 1 {
		t.Fatalf("expected 1 line, got %d", len(wrapped))
	}
	if got := wrapped[0].runs[0].text; got != "    " {
		t.Errorf("indent run = %q, want four spaces", got)
	}
}

func TestSaveSlideImages(t *testing.T) {
	c := NewComposer(nil)
	d, err := c.BuildDeck([]SlideSpec{
		{Kind: KindTitle, Title: "One"},
		{Kind: KindContent, Title: "Two", Bullets: []string{"x"}},
	})
	if err != nil {
		t.Fatalf("BuildDeck: %v", err)
	}

	dir := t.TempDir()
	pattern := filepath.Join(dir, "slide%02d.png")
	if err := d.SaveSlideImages(pattern, nil); err != nil {
		t.Fatalf("SaveSlideImages: %v", err)
	}
	for _, name := range []string{"slide01.png", "slide02.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing rendered file %s: %v", name, err)
		}
	}
}
