package deck

// Slide is an ordered collection of regions rendered onto the canvas.
// Regions are appended in z-order and never edited after composition.
type Slide struct {
	shapes []Shape
}

func newSlide() *Slide {
	return &Slide{shapes: make([]Shape, 0)}
}

// CreateBox creates a new box region and appends it to the slide.
func (s *Slide) CreateBox() *BoxShape {
	b := NewBoxShape()
	s.shapes = append(s.shapes, b)
	return b
}

// CreateTextBox creates a new text box region and appends it to the slide.
func (s *Slide) CreateTextBox() *TextBoxShape {
	t := NewTextBoxShape()
	s.shapes = append(s.shapes, t)
	return t
}

// CreateTable creates a new table region with the given dimensions
// and appends it to the slide.
func (s *Slide) CreateTable(rows, cols int) *TableShape {
	t := NewTableShape(rows, cols)
	s.shapes = append(s.shapes, t)
	return t
}

// Shapes returns all regions in z-order.
func (s *Slide) Shapes() []Shape {
	return s.shapes
}

// ShapeCount returns the number of regions on the slide.
func (s *Slide) ShapeCount() int {
	return len(s.shapes)
}
