package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDeckIsEmpty(t *testing.T) {
	d := New()
	if d.SlideCount() != 0 {
		t.Errorf("new deck has %d slides, want 0", d.SlideCount())
	}
	if d.Canvas().CX != Inch(10) || d.Canvas().CY != Inch(7.5) {
		t.Errorf("canvas is %dx%d, want %dx%d",
			d.Canvas().CX, d.Canvas().CY, Inch(10), Inch(7.5))
	}
}

func TestAppendOrder(t *testing.T) {
	d := New()
	c := NewComposer(nil)
	first := d.Append(c.TitleSlide("First", ""))
	second := d.Append(c.ContentSlide("Second", []string{"x"}, ""))

	if d.SlideCount() != 2 {
		t.Fatalf("deck has %d slides, want 2", d.SlideCount())
	}
	if s, _ := d.Slide(0); s != first {
		t.Error("slide 0 is not the first appended slide")
	}
	if s, _ := d.Slide(1); s != second {
		t.Error("slide 1 is not the second appended slide")
	}
}

func TestSlideIndexOutOfRange(t *testing.T) {
	d := New()
	d.CreateSlide()
	for _, idx := range []int{-1, 1, 100} {
		if _, err := d.Slide(idx); err == nil {
			t.Errorf("Slide(%d) did not return an error", idx)
		}
	}
}

func TestSaveAndOpen(t *testing.T) {
	c := NewComposer(nil)
	d, err := c.BuildDeck([]SlideSpec{
		{Kind: KindTitle, Title: "Saved Deck", Subtitle: "roundtrip"},
		{Kind: KindContent, Title: "Body", Bullets: []string{"one", "two"}},
	})
	if err != nil {
		t.Fatalf("BuildDeck: %v", err)
	}
	d.Properties().Title = "Saved Deck"

	path := filepath.Join(t.TempDir(), "out.pptx")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if info.SlideCount != 2 {
		t.Errorf("read back %d slides, want 2", info.SlideCount)
	}
	if info.Title != "Saved Deck" {
		t.Errorf("title = %q, want \"Saved Deck\"", info.Title)
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	d := New()
	d.Append(NewComposer(nil).TitleSlide("x", ""))

	path := filepath.Join(t.TempDir(), "nested", "dir", "deck.pptx")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	d := New()
	d.Append(NewComposer(nil).TitleSlide("x", ""))

	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "deck.pptx" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only deck.pptx", names)
	}
}

func TestValidateEmptyDeck(t *testing.T) {
	d := New()
	err := d.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty deck")
	}
	if !strings.Contains(err.Error(), "at least one slide") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateHeaderBandDrift(t *testing.T) {
	d := New()
	c := NewComposer(nil)
	d.Append(c.ContentSlide("A", []string{"x"}, ""))

	// Hand-built slide with a band of a different height.
	slide := d.CreateSlide()
	band := slide.CreateBox()
	band.SetPosition(0, 0)
	band.SetSize(Inch(10), Inch(1.5))
	band.GetFill().SetSolid(NewColor("0070C0"))

	err := d.Validate()
	if err == nil {
		t.Fatal("expected validation error for drifting header band")
	}
	if !strings.Contains(err.Error(), "header band") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateShapePastCanvas(t *testing.T) {
	d := New()
	slide := d.CreateSlide()
	box := slide.CreateBox()
	box.SetPosition(Inch(9), Inch(7))
	box.SetSize(Inch(2), Inch(1))

	err := d.Validate()
	if err == nil {
		t.Fatal("expected validation error for shape past canvas edge")
	}
	if !strings.Contains(err.Error(), "canvas") {
		t.Errorf("unexpected error: %v", err)
	}
}
