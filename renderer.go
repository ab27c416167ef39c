package deck

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageFormat represents the output image format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// RenderOptions configures slide-to-image rendering.
type RenderOptions struct {
	// Width is the output image width in pixels. Height is calculated from the canvas aspect ratio.
	// Default: 960
	Width int
	// Format is the output image format (PNG or JPEG).
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
	// DPI is the rendering DPI for font sizing. Default: 96.
	DPI float64
	// FontDirs specifies additional directories to search for TrueType/OpenType fonts.
	// System font directories are always searched automatically.
	FontDirs []string
	// FontCache allows sharing a pre-configured FontCache across multiple renders.
	// If nil, a new FontCache is created using FontDirs.
	FontCache *FontCache
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:       960,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
		DPI:         96,
	}
}

// SlideImage renders a single slide to an image.
func (d *Deck) SlideImage(slideIndex int, opts *RenderOptions) (image.Image, error) {
	if slideIndex < 0 || slideIndex >= len(d.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", slideIndex, len(d.slides)-1)
	}
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	if opts.Width <= 0 {
		opts.Width = 960
	}

	slide := d.slides[slideIndex]
	canvas := d.canvas

	canvasW := float64(canvas.CX)
	canvasH := float64(canvas.CY)
	imgW := opts.Width
	imgH := int(float64(imgW) * canvasH / canvasW)

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := &renderer{
		img:       img,
		scaleX:    float64(imgW) / canvasW,
		scaleY:    float64(imgH) / canvasH,
		fontCache: opts.FontCache,
		dpi:       opts.DPI,
	}
	if r.fontCache == nil {
		r.fontCache = NewFontCache(opts.FontDirs...)
	}
	if r.dpi <= 0 {
		r.dpi = 96
	}

	for _, shape := range slide.shapes {
		r.renderShape(shape)
	}

	return img, nil
}

// SlideImages renders all slides to images.
func (d *Deck) SlideImages(opts *RenderOptions) ([]image.Image, error) {
	images := make([]image.Image, len(d.slides))
	for i := range d.slides {
		img, err := d.SlideImage(i, opts)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
		images[i] = img
	}
	return images, nil
}

// SaveSlideImage renders a slide and saves it to a file.
func (d *Deck) SaveSlideImage(slideIndex int, path string, opts *RenderOptions) error {
	img, err := d.SlideImage(slideIndex, opts)
	if err != nil {
		return err
	}
	return saveImage(img, path, opts)
}

// SaveSlideImages renders all slides and saves them to files.
// The pattern should contain %d for the slide number (1-based), e.g. "slide_%d.png".
func (d *Deck) SaveSlideImages(pattern string, opts *RenderOptions) error {
	for i := range d.slides {
		path := fmt.Sprintf(pattern, i+1)
		if err := d.SaveSlideImage(i, path, opts); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

func saveImage(img image.Image, path string, opts *RenderOptions) error {
	if opts == nil {
		opts = DefaultRenderOptions()
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		return jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	default:
		return png.Encode(f, img)
	}
}

// --- renderer ---

type renderer struct {
	img       *image.RGBA
	scaleX    float64
	scaleY    float64
	fontCache *FontCache
	dpi       float64
}

func (r *renderer) renderShape(shape Shape) {
	switch s := shape.(type) {
	case *BoxShape:
		r.renderFrame(&s.BaseShape, &s.textFrame)
	case *TextBoxShape:
		r.renderFrame(&s.BaseShape, &s.textFrame)
	case *TableShape:
		r.renderTable(s)
	}
}

func (r *renderer) emuToPixelX(emu int64) int {
	return int(float64(emu) * r.scaleX)
}

func (r *renderer) emuToPixelY(emu int64) int {
	return int(float64(emu) * r.scaleY)
}

func argbToRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: c.GetRed(),
		G: c.GetGreen(),
		B: c.GetBlue(),
		A: c.GetAlpha(),
	}
}

// renderFrame draws a box or text box region: fill, border, then text.
func (r *renderer) renderFrame(b *BaseShape, t *textFrame) {
	x := r.emuToPixelX(b.offsetX)
	y := r.emuToPixelY(b.offsetY)
	w := r.emuToPixelX(b.width)
	h := r.emuToPixelY(b.height)
	rect := image.Rect(x, y, x+w, y+h)

	if b.fill != nil && b.fill.Type == FillSolid {
		fillColor := argbToRGBA(b.fill.Color)
		draw.Draw(r.img, rect, &image.Uniform{fillColor}, image.Point{}, draw.Over)
	}

	if b.border != nil && b.border.Style != BorderNone {
		borderColor := argbToRGBA(b.border.Color)
		pw := int(float64(b.border.Width) * r.scaleX)
		if pw < 1 {
			pw = 1
		}
		r.drawRect(rect, borderColor, pw)
	}

	tx, ty, tw, th := x, y, w, h
	if t.insetsSet {
		tx += r.emuToPixelX(t.insetLeft)
		ty += r.emuToPixelY(t.insetTop)
		tw -= r.emuToPixelX(t.insetLeft + t.insetRight)
		th -= r.emuToPixelY(t.insetTop + t.insetBottom)
	}
	r.drawParagraphs(t.paragraphs, tx, ty, tw, th)
}

func (r *renderer) renderTable(s *TableShape) {
	x := r.emuToPixelX(s.offsetX)
	y := r.emuToPixelY(s.offsetY)
	w := r.emuToPixelX(s.width)
	h := r.emuToPixelY(s.height)

	if s.numRows == 0 || s.numCols == 0 {
		return
	}

	cellW := w / s.numCols
	cellH := h / s.numRows

	for row := 0; row < s.numRows; row++ {
		for col := 0; col < s.numCols; col++ {
			cx := x + col*cellW
			cy := y + row*cellH
			cellRect := image.Rect(cx, cy, cx+cellW, cy+cellH)

			cell := s.rows[row][col]

			if cell.fill != nil && cell.fill.Type == FillSolid {
				fillColor := argbToRGBA(cell.fill.Color)
				draw.Draw(r.img, cellRect, &image.Uniform{fillColor}, image.Point{}, draw.Over)
			}

			r.drawRect(cellRect, color.RGBA{R: 0, G: 0, B: 0, A: 255}, 1)

			r.drawParagraphs(cell.paragraphs, cx+2, cy+2, cellW-4, cellH-4)
		}
	}
}

// --- Drawing primitives ---

func (r *renderer) drawRect(rect image.Rectangle, c color.RGBA, width int) {
	for i := 0; i < width; i++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.setPixel(x, rect.Min.Y+i, c)
			r.setPixel(x, rect.Max.Y-1-i, c)
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			r.setPixel(rect.Min.X+i, y, c)
			r.setPixel(rect.Max.X-1-i, y, c)
		}
	}
}

func (r *renderer) setPixel(x, y int, c color.RGBA) {
	bounds := r.img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		r.img.SetRGBA(x, y, c)
	}
}

// --- Text rendering ---

// getFace returns a TrueType font.Face for the given Font, falling back to basicfont.
func (r *renderer) getFace(f *Font) font.Face {
	if f == nil {
		f = NewFont()
	}
	sizePt := float64(f.Size)
	if sizePt <= 0 {
		sizePt = 10
	}
	// sizePt is the design-time point size. Scale by scaleY (EMU->pixel ratio)
	// and convert pt->px via DPI/72.
	scaledPt := sizePt * r.scaleY * r.dpi / 72.0

	name := f.Name
	if name == "" {
		name = "Calibri"
	}

	face := r.fontCache.GetFace(name, scaledPt, f.Bold, f.Italic)
	if face != nil {
		return face
	}

	for _, fallback := range []string{"arial", "helvetica", "dejavu sans", "liberation sans", "noto sans"} {
		face = r.fontCache.GetFace(fallback, scaledPt, f.Bold, f.Italic)
		if face != nil {
			return face
		}
	}

	return basicfont.Face7x13
}

// textRun holds rendering info for a single text run.
type textRun struct {
	text  string
	face  font.Face
	color color.RGBA
}

// textLine holds a wrapped line of text runs.
type textLine struct {
	runs      []textRun
	width     int
	height    int
	spaceTop  int // extra pixels above the line, from paragraph spacing
	alignment HorizontalAlignment
}

func buildTextLine(runs []textRun, align HorizontalAlignment) textLine {
	totalW := 0
	maxH := 0
	for _, r := range runs {
		totalW += font.MeasureString(r.face, r.text).Ceil()
		h := r.face.Metrics().Height.Ceil()
		if h > maxH {
			maxH = h
		}
	}
	if maxH <= 0 {
		maxH = 14
	}
	return textLine{runs: runs, width: totalW, height: maxH, alignment: align}
}

func (r *renderer) drawParagraphs(paragraphs []*Paragraph, x, y, w, h int) {
	var allLines []textLine

	for _, para := range paragraphs {
		align := HorizontalLeft
		if para.alignment != nil {
			align = para.alignment.Horizontal
		}

		// spaceBefore is in hundredths of a point; convert via EMU to pixels.
		spaceTop := 0
		if para.spaceBefore > 0 {
			spaceTop = int(float64(para.spaceBefore) / 100.0 * float64(emuPerPoint) * r.scaleY)
		}

		var runs []textRun
		for _, tr := range para.runs {
			face := r.getFace(tr.font)
			tc := color.RGBA{R: 0, G: 0, B: 0, A: 255}
			if tr.font != nil {
				tc = argbToRGBA(tr.font.Color)
			}
			runs = append(runs, textRun{text: tr.text, face: face, color: tc})
		}

		var lines []textLine
		if len(runs) > 0 {
			lines = append(lines, buildTextLine(runs, align))
		} else {
			lines = append(lines, textLine{height: 14, alignment: align})
		}
		lines[0].spaceTop = spaceTop
		allLines = append(allLines, lines...)
	}

	// Word-wrap lines that exceed width
	var wrappedLines []textLine
	for _, line := range allLines {
		if line.width <= w || w <= 0 || len(line.runs) == 0 {
			wrappedLines = append(wrappedLines, line)
			continue
		}
		wrapped := wrapRunLine(line, w)
		wrapped[0].spaceTop = line.spaceTop
		wrappedLines = append(wrappedLines, wrapped...)
	}

	curY := y
	for _, line := range wrappedLines {
		curY += line.spaceTop + line.height
		if curY > y+h {
			break
		}

		drawX := x
		switch line.alignment {
		case HorizontalCenter:
			drawX = x + (w-line.width)/2
		case HorizontalRight:
			drawX = x + w - line.width
		}

		for _, run := range line.runs {
			d := &font.Drawer{
				Dst:  r.img,
				Src:  &image.Uniform{run.color},
				Face: run.face,
				Dot:  fixed.P(drawX, curY),
			}
			d.DrawString(run.text)
			drawX += font.MeasureString(run.face, run.text).Ceil()
		}
	}
}

// wrapRunLine wraps a textLine into multiple lines that fit within
// maxWidth. Whitespace runs are kept intact so that leading indentation
// and manual column alignment survive wrapping; only the single space
// run at a break point is dropped.
func wrapRunLine(line textLine, maxWidth int) []textLine {
	type styledChunk struct {
		text  string
		space bool
		face  font.Face
		color color.RGBA
	}

	var chunks []styledChunk
	for _, run := range line.runs {
		for _, c := range splitSpaceChunks(run.text) {
			chunks = append(chunks, styledChunk{
				text:  c,
				space: strings.TrimSpace(c) == "",
				face:  run.face,
				color: run.color,
			})
		}
	}

	if len(chunks) == 0 {
		return []textLine{line}
	}

	var result []textLine
	var curRuns []textRun
	curWidth := 0

	hasWord := false
	flush := func() {
		if len(curRuns) > 0 {
			result = append(result, buildTextLine(curRuns, line.alignment))
			curRuns = nil
			curWidth = 0
			hasWord = false
		}
	}

	prevSpace := false
	for _, ch := range chunks {
		cw := font.MeasureString(ch.face, ch.text).Ceil()
		if !ch.space && hasWord && curWidth+cw > maxWidth {
			if prevSpace && len(curRuns) > 0 {
				curRuns = curRuns[:len(curRuns)-1]
			}
			flush()
		}
		curRuns = append(curRuns, textRun{text: ch.text, face: ch.face, color: ch.color})
		curWidth += cw
		if !ch.space {
			hasWord = true
		}
		prevSpace = ch.space
	}
	flush()

	if len(result) == 0 {
		return []textLine{line}
	}
	return result
}

// splitSpaceChunks splits s into alternating runs of spaces and
// non-spaces, preserving every character.
func splitSpaceChunks(s string) []string {
	var chunks []string
	start := 0
	for i := 0; i < len(s); i++ {
		if (s[i] == ' ') != (s[start] == ' ') {
			chunks = append(chunks, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		chunks = append(chunks, s[start:])
	}
	return chunks
}
