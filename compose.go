package deck

import (
	"errors"
	"fmt"
	"strconv"
)

// Slide layout constants (EMU). The header band occupies the same fixed
// band on every non-title slide; body offsets depend only on whether a
// diagram or table precedes the body.
const (
	sideMargin   = int64(0.5 * emuPerInch)
	contentWidth = int64(9.0 * emuPerInch)

	bandWidth  = int64(10.0 * emuPerInch)
	bandHeight = int64(1.2 * emuPerInch)
	bandInsetL = int64(0.5 * emuPerInch)
	bandInsetT = int64(0.3 * emuPerInch)

	bannerTop    = int64(2.5 * emuPerInch)
	bannerHeight = int64(1.5 * emuPerInch)
	subtitleTop  = int64(4.2 * emuPerInch)
	subtitleH    = int64(0.8 * emuPerInch)

	bodyTop    = int64(1.5 * emuPerInch)
	bodyHeight = int64(5.0 * emuPerInch)

	diagramTop    = int64(1.5 * emuPerInch)
	diagramHeight = int64(2.5 * emuPerInch)
	diagramInset  = int64(0.2 * emuPerInch)

	diagramBulletsTop = int64(4.2 * emuPerInch)
	diagramBulletsH   = int64(2.5 * emuPerInch)

	noteTop    = int64(6.5 * emuPerInch)
	noteHeight = int64(0.5 * emuPerInch)

	tableTop       = int64(1.5 * emuPerInch)
	tableRowHeight = int64(0.5 * emuPerInch)

	diagramBorderWidth = 9525 // 0.75pt in EMU

	// Paragraph spacing in hundredths of a point.
	bodySpaceBefore          = 1200
	diagramBulletSpaceBefore = 800
)

var errNoColumns = errors.New("table requires at least one header column")

// RaggedRowError reports a table row whose cell count disagrees with the
// header count. The composer fails fast rather than clipping or padding.
type RaggedRowError struct {
	Row     int // zero-based row index
	Cells   int
	Columns int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("table row %d has %d cells, want %d", e.Row, e.Cells, e.Columns)
}

// Composer renders structured content into slides using a consistent
// visual language. It is stateless across calls: every builder is a pure
// function of its arguments and the theme, so slide order is entirely
// the caller's responsibility.
type Composer struct {
	theme *Theme
}

// NewComposer creates a Composer. A nil theme selects DefaultTheme.
func NewComposer(theme *Theme) *Composer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Composer{theme: theme}
}

// Theme returns the composer's theme.
func (c *Composer) Theme() *Theme {
	return c.theme
}

// TitleSlide builds a slide with a large centered banner at mid-canvas
// height and, if subtitle is non-empty, a muted centered subtitle below it.
func (c *Composer) TitleSlide(title, subtitle string) *Slide {
	slide := newSlide()

	banner := slide.CreateBox()
	banner.SetName("Title Banner")
	banner.SetPosition(sideMargin, bannerTop)
	banner.SetSize(contentWidth, bannerHeight)
	banner.GetFill().SetSolid(c.theme.HeaderColor)

	p := banner.AddParagraph()
	p.GetAlignment().SetHorizontal(HorizontalCenter)
	p.CreateTextRun(title).GetFont().
		SetName(c.theme.BodyFont).
		SetSize(c.theme.TitleSize).
		SetBold(true).
		SetColor(c.theme.TitleTextColor)

	if subtitle != "" {
		sub := slide.CreateTextBox()
		sub.SetName("Subtitle")
		sub.SetPosition(sideMargin, subtitleTop)
		sub.SetSize(contentWidth, subtitleH)

		sp := sub.AddParagraph()
		sp.GetAlignment().SetHorizontal(HorizontalCenter)
		sp.CreateTextRun(subtitle).GetFont().
			SetName(c.theme.BodyFont).
			SetSize(c.theme.SubtitleSize).
			SetColor(c.theme.SubtitleColor)
	}

	return slide
}

// ContentSlide builds a slide with the standard header band and a body
// of one paragraph per bullet, in document order. Empty bullet strings
// become blank spacer paragraphs and are never filtered. A non-empty
// note renders as small italic gray text pinned near the canvas bottom,
// independent of body length.
func (c *Composer) ContentSlide(title string, bullets []string, note string) *Slide {
	slide := newSlide()
	c.addHeaderBand(slide, title)

	body := slide.CreateTextBox()
	body.SetName("Body")
	body.SetPosition(sideMargin, bodyTop)
	body.SetSize(contentWidth, bodyHeight)
	c.addBullets(body, bullets, c.theme.BodySize, bodySpaceBefore)

	if note != "" {
		nb := slide.CreateTextBox()
		nb.SetName("Note")
		nb.SetPosition(sideMargin, noteTop)
		nb.SetSize(contentWidth, noteHeight)
		nb.AddParagraph().CreateTextRun(note).GetFont().
			SetName(c.theme.BodyFont).
			SetSize(c.theme.NoteSize).
			SetItalic(true).
			SetColor(c.theme.NoteColor)
	}

	return slide
}

// DiagramSlide builds a slide with the standard header band and a
// light-gray diagram box whose text renders in the theme's monospace
// font, preserving manual ASCII-art alignment. Optional bullets render
// below the box with the same per-paragraph rule as ContentSlide.
func (c *Composer) DiagramSlide(title, diagramText string, bullets []string) *Slide {
	slide := newSlide()
	c.addHeaderBand(slide, title)

	box := slide.CreateBox()
	box.SetName("Diagram")
	box.SetPosition(sideMargin, diagramTop)
	box.SetSize(contentWidth, diagramHeight)
	box.GetFill().SetSolid(c.theme.DiagramFill)
	box.GetBorder().SetSolid(c.theme.DiagramBorder, diagramBorderWidth)
	box.SetInsets(diagramInset, diagramInset, diagramInset, diagramInset)

	box.AddParagraph().CreateTextRun(diagramText).GetFont().
		SetName(c.theme.MonoFont).
		SetSize(c.theme.DiagramSize).
		SetColor(c.theme.BodyTextColor)

	if len(bullets) > 0 {
		tb := slide.CreateTextBox()
		tb.SetName("Diagram Bullets")
		tb.SetPosition(sideMargin, diagramBulletsTop)
		tb.SetSize(contentWidth, diagramBulletsH)
		c.addBullets(tb, bullets, c.theme.DiagramBulletSize, diagramBulletSpaceBefore)
	}

	return slide
}

// TableSlide builds a slide with the standard header band and a grid of
// len(rows)+1 rows by len(headers) columns. Row 0 is the accent-filled
// header row; data values are coerced to display text in header order.
// A row whose length disagrees with headers yields a *RaggedRowError.
func (c *Composer) TableSlide(title string, headers []string, rows [][]any) (*Slide, error) {
	if len(headers) == 0 {
		return nil, errNoColumns
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, &RaggedRowError{Row: i, Cells: len(row), Columns: len(headers)}
		}
	}

	slide := newSlide()
	c.addHeaderBand(slide, title)

	table := slide.CreateTable(len(rows)+1, len(headers))
	table.SetName("Data Table")
	table.SetPosition(sideMargin, tableTop)
	table.SetSize(contentWidth, int64(len(rows)+1)*tableRowHeight)

	for i, header := range headers {
		cell := table.GetCell(0, i)
		cell.GetFill().SetSolid(c.theme.AccentColor)
		cell.SetText(header).GetFont().
			SetName(c.theme.BodyFont).
			SetSize(c.theme.TableHeadSize).
			SetBold(true).
			SetColor(c.theme.TitleTextColor)
	}

	for ri, row := range rows {
		for ci, value := range row {
			table.GetCell(ri+1, ci).SetText(formatCellValue(value)).GetFont().
				SetName(c.theme.BodyFont).
				SetSize(c.theme.TableCellSize).
				SetColor(c.theme.BodyTextColor)
		}
	}

	return slide, nil
}

// addHeaderBand places the full-width colored band that every non-title
// slide shares, with the slide title bold and left-aligned inside it.
func (c *Composer) addHeaderBand(slide *Slide, title string) {
	band := slide.CreateBox()
	band.SetName("Header Band")
	band.SetPosition(0, 0)
	band.SetSize(bandWidth, bandHeight)
	band.GetFill().SetSolid(c.theme.HeaderColor)
	band.SetInsets(bandInsetL, bandInsetT, 0, 0)

	band.AddParagraph().CreateTextRun(title).GetFont().
		SetName(c.theme.BodyFont).
		SetSize(c.theme.HeaderSize).
		SetBold(true).
		SetColor(c.theme.TitleTextColor)
}

// addBullets appends one paragraph per bullet string, preserving empty
// strings as blank spacer paragraphs.
func (c *Composer) addBullets(frame interface{ AddParagraph() *Paragraph }, bullets []string, size, spaceBefore int) {
	for _, bullet := range bullets {
		p := frame.AddParagraph()
		p.SetSpaceBefore(spaceBefore)
		p.CreateTextRun(bullet).GetFont().
			SetName(c.theme.BodyFont).
			SetSize(size).
			SetColor(c.theme.BodyTextColor)
	}
}

// formatCellValue coerces a table value to display text.
func formatCellValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}
