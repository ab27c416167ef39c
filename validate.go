package deck

import (
	"fmt"
	"strings"
)

// Validate checks the deck for structural issues and returns an error
// describing all problems found, or nil if the deck is valid.
func (d *Deck) Validate() error {
	var errs []string

	if d.properties == nil {
		errs = append(errs, "document properties are nil")
	}
	if d.canvas == nil {
		errs = append(errs, "canvas is nil")
	} else {
		if d.canvas.CX <= 0 {
			errs = append(errs, "canvas width (CX) must be positive")
		}
		if d.canvas.CY <= 0 {
			errs = append(errs, "canvas height (CY) must be positive")
		}
	}
	if len(d.slides) == 0 {
		errs = append(errs, "deck must have at least one slide")
	}

	for i, slide := range d.slides {
		prefix := fmt.Sprintf("slide %d", i+1)
		for _, e := range validateSlide(slide, d.canvas) {
			errs = append(errs, prefix+": "+e)
		}
	}

	errs = append(errs, validateHeaderBands(d.slides)...)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func validateSlide(s *Slide, canvas *Canvas) []string {
	var errs []string
	for j, shape := range s.shapes {
		prefix := fmt.Sprintf("shape %d", j+1)
		if shape == nil {
			errs = append(errs, prefix+": shape is nil")
			continue
		}
		if shape.GetWidth() < 0 {
			errs = append(errs, prefix+": width is negative")
		}
		if shape.GetHeight() < 0 {
			errs = append(errs, prefix+": height is negative")
		}
		if canvas != nil {
			if shape.GetOffsetX()+shape.GetWidth() > canvas.CX {
				errs = append(errs, prefix+": extends past canvas right edge")
			}
			if shape.GetOffsetY()+shape.GetHeight() > canvas.CY {
				errs = append(errs, prefix+": extends past canvas bottom edge")
			}
		}

		switch sh := shape.(type) {
		case *TableShape:
			if sh.numRows <= 0 || sh.numCols <= 0 {
				errs = append(errs, prefix+": table must have at least 1 row and 1 column")
			}
			if sh.numRows > 0 && len(sh.rows) != sh.numRows {
				errs = append(errs, prefix+": table row count mismatch")
			}
			for ri, row := range sh.rows {
				if len(row) != sh.numCols {
					errs = append(errs, fmt.Sprintf("%s: table row %d has %d cells, want %d", prefix, ri+1, len(row), sh.numCols))
				}
			}
		case *BoxShape:
			errs = append(errs, validateParagraphs(sh.paragraphs, prefix)...)
		case *TextBoxShape:
			errs = append(errs, validateParagraphs(sh.paragraphs, prefix)...)
		}
	}
	return errs
}

// validateHeaderBands checks that every full-width box anchored at the
// canvas origin has the same height across the deck. A drifting header
// band between slides is a composition bug.
func validateHeaderBands(slides []*Slide) []string {
	var errs []string
	var refHeight int64
	refSlide := 0

	for i, slide := range slides {
		for _, shape := range slide.shapes {
			box, ok := shape.(*BoxShape)
			if !ok {
				continue
			}
			if box.offsetX != 0 || box.offsetY != 0 {
				continue
			}
			if refHeight == 0 {
				refHeight = box.height
				refSlide = i + 1
				continue
			}
			if box.height != refHeight {
				errs = append(errs, fmt.Sprintf(
					"slide %d: header band height %d differs from slide %d (%d)",
					i+1, box.height, refSlide, refHeight))
			}
		}
	}
	return errs
}

func validateParagraphs(paragraphs []*Paragraph, prefix string) []string {
	var errs []string
	for i, para := range paragraphs {
		if para == nil {
			errs = append(errs, fmt.Sprintf("%s: paragraph %d is nil", prefix, i+1))
			continue
		}
		if para.alignment == nil {
			errs = append(errs, fmt.Sprintf("%s: paragraph %d has nil alignment", prefix, i+1))
		}
		for k, tr := range para.runs {
			if tr == nil {
				errs = append(errs, fmt.Sprintf("%s: paragraph %d run %d is nil", prefix, i+1, k+1))
				continue
			}
			if tr.font == nil {
				errs = append(errs, fmt.Sprintf("%s: paragraph %d run %d has nil font", prefix, i+1, k+1))
			}
		}
	}
	return errs
}
