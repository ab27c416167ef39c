package deck

// Shape is the interface every slide region implements.
type Shape interface {
	GetType() ShapeType
	GetOffsetX() int64
	GetOffsetY() int64
	GetWidth() int64
	GetHeight() int64
	GetName() string
	// base returns the underlying BaseShape (unexported, internal use only).
	base() *BaseShape
}

// ShapeType represents the kind of region.
type ShapeType int

const (
	ShapeTypeBox ShapeType = iota
	ShapeTypeTextBox
	ShapeTypeTable
)

// BaseShape contains common region properties: a positioned rectangle
// with optional fill and border.
type BaseShape struct {
	name    string
	offsetX int64 // in EMU
	offsetY int64 // in EMU
	width   int64 // in EMU
	height  int64 // in EMU
	fill    *Fill
	border  *Border
}

func (b *BaseShape) GetOffsetX() int64 { return b.offsetX }
func (b *BaseShape) GetOffsetY() int64 { return b.offsetY }
func (b *BaseShape) GetWidth() int64   { return b.width }
func (b *BaseShape) GetHeight() int64  { return b.height }
func (b *BaseShape) GetName() string   { return b.name }
func (b *BaseShape) base() *BaseShape  { return b }

func (b *BaseShape) SetName(n string) *BaseShape { b.name = n; return b }

// SetPosition sets both offset X and Y in EMU.
func (b *BaseShape) SetPosition(x, y int64) *BaseShape {
	b.offsetX = x
	b.offsetY = y
	return b
}

// SetSize sets both width and height in EMU.
func (b *BaseShape) SetSize(w, h int64) *BaseShape {
	b.width = w
	b.height = h
	return b
}

func (b *BaseShape) GetFill() *Fill {
	if b.fill == nil {
		b.fill = NewFill()
	}
	return b.fill
}

func (b *BaseShape) SetFill(f *Fill) { b.fill = f }

func (b *BaseShape) GetBorder() *Border {
	if b.border == nil {
		b.border = NewBorder()
	}
	return b.border
}

func (b *BaseShape) SetBorder(border *Border) { b.border = border }

// Paragraph represents one paragraph of text within a region.
type Paragraph struct {
	runs        []*TextRun
	alignment   *Alignment
	spaceBefore int // in hundredths of a point
}

// NewParagraph creates a new empty paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{alignment: NewAlignment()}
}

// GetAlignment returns the paragraph alignment.
func (p *Paragraph) GetAlignment() *Alignment {
	return p.alignment
}

// GetSpaceBefore returns the space before the paragraph in hundredths of a point.
func (p *Paragraph) GetSpaceBefore() int { return p.spaceBefore }

// SetSpaceBefore sets the space before the paragraph in hundredths of a point.
func (p *Paragraph) SetSpaceBefore(v int) *Paragraph {
	p.spaceBefore = v
	return p
}

// CreateTextRun appends a new text run to the paragraph.
func (p *Paragraph) CreateTextRun(text string) *TextRun {
	tr := &TextRun{text: text, font: NewFont()}
	p.runs = append(p.runs, tr)
	return tr
}

// Runs returns all text runs.
func (p *Paragraph) Runs() []*TextRun {
	return p.runs
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var s string
	for _, r := range p.runs {
		s += r.text
	}
	return s
}

// TextRun represents a run of text with uniform formatting.
type TextRun struct {
	text string
	font *Font
}

// GetText returns the text content.
func (tr *TextRun) GetText() string { return tr.text }

// SetText sets the text content.
func (tr *TextRun) SetText(text string) { tr.text = text }

// GetFont returns the font properties.
func (tr *TextRun) GetFont() *Font { return tr.font }

// textFrame is the shared paragraph container for box and text box regions.
type textFrame struct {
	paragraphs []*Paragraph
	wordWrap   bool
	// Text insets (padding) in EMU. Zero values mean the format defaults.
	insetLeft   int64
	insetTop    int64
	insetRight  int64
	insetBottom int64
	insetsSet   bool
}

// AddParagraph appends a new paragraph and returns it. Unlike rich text
// APIs that pre-create a first paragraph, a frame starts empty and every
// paragraph is appended the same way.
func (t *textFrame) AddParagraph() *Paragraph {
	p := NewParagraph()
	t.paragraphs = append(t.paragraphs, p)
	return p
}

// Paragraphs returns all paragraphs in document order.
func (t *textFrame) Paragraphs() []*Paragraph {
	return t.paragraphs
}

// SetWordWrap sets word wrap.
func (t *textFrame) SetWordWrap(wrap bool) {
	t.wordWrap = wrap
}

// GetWordWrap returns the word wrap setting.
func (t *textFrame) GetWordWrap() bool {
	return t.wordWrap
}

// SetInsets sets the text insets (left, top, right, bottom) in EMU.
func (t *textFrame) SetInsets(l, top, r, bottom int64) {
	t.insetLeft = l
	t.insetTop = top
	t.insetRight = r
	t.insetBottom = bottom
	t.insetsSet = true
}

// BoxShape represents a filled rectangle region that may carry text,
// such as a header band, title banner, or diagram box.
type BoxShape struct {
	BaseShape
	textFrame
}

func (b *BoxShape) GetType() ShapeType { return ShapeTypeBox }

// NewBoxShape creates a new box region with word wrap enabled.
func NewBoxShape() *BoxShape {
	b := &BoxShape{}
	b.wordWrap = true
	return b
}

// TextBoxShape represents a borderless text region.
type TextBoxShape struct {
	BaseShape
	textFrame
}

func (t *TextBoxShape) GetType() ShapeType { return ShapeTypeTextBox }

// NewTextBoxShape creates a new text box region with word wrap enabled.
func NewTextBoxShape() *TextBoxShape {
	t := &TextBoxShape{}
	t.wordWrap = true
	return t
}

// TableShape represents a grid region.
type TableShape struct {
	BaseShape
	rows    [][]*TableCell
	numRows int
	numCols int
}

func (t *TableShape) GetType() ShapeType { return ShapeTypeTable }

// NewTableShape creates a new table region with the given dimensions.
func NewTableShape(rows, cols int) *TableShape {
	table := &TableShape{
		numRows: rows,
		numCols: cols,
		rows:    make([][]*TableCell, rows),
	}
	for i := 0; i < rows; i++ {
		table.rows[i] = make([]*TableCell, cols)
		for j := 0; j < cols; j++ {
			table.rows[i][j] = NewTableCell()
		}
	}
	return table
}

// GetCell returns the cell at the given row and column, or nil if out of range.
func (t *TableShape) GetCell(row, col int) *TableCell {
	if row < 0 || row >= t.numRows || col < 0 || col >= t.numCols {
		return nil
	}
	return t.rows[row][col]
}

// Rows returns all cells, row-major.
func (t *TableShape) Rows() [][]*TableCell {
	return t.rows
}

// NumRows returns the number of rows.
func (t *TableShape) NumRows() int { return t.numRows }

// NumCols returns the number of columns.
func (t *TableShape) NumCols() int { return t.numCols }

// TableCell represents one table cell.
type TableCell struct {
	paragraphs []*Paragraph
	fill       *Fill
}

// NewTableCell creates a new cell with one empty paragraph.
func NewTableCell() *TableCell {
	return &TableCell{
		paragraphs: []*Paragraph{NewParagraph()},
		fill:       NewFill(),
	}
}

// SetText sets the cell text as a single run in the first paragraph
// and returns that run for styling.
func (tc *TableCell) SetText(text string) *TextRun {
	if len(tc.paragraphs) == 0 {
		tc.paragraphs = append(tc.paragraphs, NewParagraph())
	}
	return tc.paragraphs[0].CreateTextRun(text)
}

// Paragraphs returns the cell paragraphs.
func (tc *TableCell) Paragraphs() []*Paragraph {
	return tc.paragraphs
}

// GetFill returns the cell fill.
func (tc *TableCell) GetFill() *Fill { return tc.fill }

// SetFill sets the cell fill.
func (tc *TableCell) SetFill(f *Fill) { tc.fill = f }

// Text returns the concatenated text of all cell paragraphs.
func (tc *TableCell) Text() string {
	var s string
	for _, p := range tc.paragraphs {
		s += p.Text()
	}
	return s
}
