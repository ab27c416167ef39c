// Package deck assembles slide decks from a small set of content
// archetypes and writes them as PowerPoint presentation files (.pptx)
// following the Office Open XML (OOXML) standard.
//
// The composition layer (Composer) lays structured content out into
// styled regions on a fixed-size canvas; the Deck holds the composed
// slides in call order and owns serialization and preview rendering.
package deck

import (
	"errors"
	"io"
)

var errOutOfRange = errors.New("slide index out of range")

// Deck represents an in-memory slide deck.
type Deck struct {
	properties *DocumentProperties
	canvas     *Canvas
	slides     []*Slide
}

// New creates a new empty Deck on the default 10 x 7.5 inch canvas.
// Slides are appended by the caller in presentation order.
func New() *Deck {
	return &Deck{
		properties: NewDocumentProperties(),
		canvas:     NewCanvas(),
		slides:     make([]*Slide, 0),
	}
}

// Properties returns the document properties.
func (d *Deck) Properties() *DocumentProperties {
	return d.properties
}

// Canvas returns the deck canvas.
func (d *Deck) Canvas() *Canvas {
	return d.canvas
}

// CreateSlide creates a new empty slide and appends it to the deck.
func (d *Deck) CreateSlide() *Slide {
	slide := newSlide()
	d.slides = append(d.slides, slide)
	return slide
}

// Append adds an existing slide to the end of the deck.
func (d *Deck) Append(slide *Slide) *Slide {
	d.slides = append(d.slides, slide)
	return slide
}

// Slides returns all slides in presentation order.
func (d *Deck) Slides() []*Slide {
	return d.slides
}

// SlideCount returns the number of slides.
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// Slide returns a slide by index.
func (d *Deck) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(d.slides) {
		return nil, errOutOfRange
	}
	return d.slides[index], nil
}

// Save writes the deck to a PPTX file.
// This is a convenience wrapper around NewWriter + Save.
func (d *Deck) Save(path string) error {
	writer, err := NewWriter(d, WriterPowerPoint2007)
	if err != nil {
		return err
	}
	return writer.Save(path)
}

// WriteTo writes the deck to a writer in PPTX format.
func (d *Deck) WriteTo(w io.Writer) error {
	writer, err := NewWriter(d, WriterPowerPoint2007)
	if err != nil {
		return err
	}
	return writer.WriteTo(w)
}
