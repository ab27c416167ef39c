package deck

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

// helper: write deck to buffer and read back the summary
func roundTrip(t *testing.T, d *Deck) *DeckInfo {
	t.Helper()
	var buf bytes.Buffer
	if err := d.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	data := buf.Bytes()
	info, err := ReadFrom(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	return info
}

func TestTitleSlideRegions(t *testing.T) {
	c := NewComposer(nil)
	slide := c.TitleSlide("Buffer Optimization", "WMS")

	if slide.ShapeCount() != 2 {
		t.Fatalf("expected 2 regions, got %d", slide.ShapeCount())
	}

	banner, ok := slide.Shapes()[0].(*BoxShape)
	if !ok {
		t.Fatalf("region 0 is %T, want *BoxShape", slide.Shapes()[0])
	}
	if banner.GetOffsetX() != Inch(0.5) || banner.GetOffsetY() != Inch(2.5) {
		t.Errorf("banner at (%d,%d), want (%d,%d)",
			banner.GetOffsetX(), banner.GetOffsetY(), Inch(0.5), Inch(2.5))
	}
	if banner.GetFill().Type != FillSolid || colorRGB(banner.GetFill().Color) != "0070C0" {
		t.Errorf("banner fill = %+v, want solid 0070C0", banner.GetFill())
	}
	p := banner.Paragraphs()[0]
	if p.GetAlignment().Horizontal != HorizontalCenter {
		t.Errorf("banner alignment = %q, want center", p.GetAlignment().Horizontal)
	}
	run := p.Runs()[0]
	if run.GetText() != "Buffer Optimization" {
		t.Errorf("banner text = %q", run.GetText())
	}
	if f := run.GetFont(); f.Size != 40 || !f.Bold || colorRGB(f.Color) != "FFFFFF" {
		t.Errorf("banner font = %+v, want 40pt bold white", f)
	}

	sub, ok := slide.Shapes()[1].(*TextBoxShape)
	if !ok {
		t.Fatalf("region 1 is %T, want *TextBoxShape", slide.Shapes()[1])
	}
	if sub.GetOffsetY() != Inch(4.2) {
		t.Errorf("subtitle top = %d, want %d", sub.GetOffsetY(), Inch(4.2))
	}
	sf := sub.Paragraphs()[0].Runs()[0].GetFont()
	if sf.Size != 24 || colorRGB(sf.Color) != "646464" {
		t.Errorf("subtitle font = %+v, want 24pt gray", sf)
	}
}

func TestTitleSlideWithoutSubtitle(t *testing.T) {
	c := NewComposer(nil)
	slide := c.TitleSlide("Only Title", "")
	if slide.ShapeCount() != 1 {
		t.Errorf("expected 1 region without subtitle, got %d", slide.ShapeCount())
	}
}

func TestContentSlidePreservesBlankBullets(t *testing.T) {
	c := NewComposer(nil)
	slide := c.ContentSlide("Topic", []string{"First point", "", "Second point"}, "")

	body, ok := slide.Shapes()[1].(*TextBoxShape)
	if !ok {
		t.Fatalf("region 1 is %T, want *TextBoxShape", slide.Shapes()[1])
	}
	paras := body.Paragraphs()
	if len(paras) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(paras))
	}
	if paras[0].Text() != "First point" {
		t.Errorf("paragraph 0 = %q", paras[0].Text())
	}
	if paras[1].Text() != "" {
		t.Errorf("paragraph 1 = %q, want blank", paras[1].Text())
	}
	if paras[2].Text() != "Second point" {
		t.Errorf("paragraph 2 = %q", paras[2].Text())
	}
	for i, p := range paras {
		if p.GetSpaceBefore() != 1200 {
			t.Errorf("paragraph %d spaceBefore = %d, want 1200", i, p.GetSpaceBefore())
		}
	}
}

func TestContentSlideNote(t *testing.T) {
	c := NewComposer(nil)
	slide := c.ContentSlide("Topic", []string{"a"}, "Footnote text")

	if slide.ShapeCount() != 3 {
		t.Fatalf("expected 3 regions with note, got %d", slide.ShapeCount())
	}
	note := slide.Shapes()[2].(*TextBoxShape)
	if note.GetOffsetY() != Inch(6.5) {
		t.Errorf("note top = %d, want %d", note.GetOffsetY(), Inch(6.5))
	}
	nf := note.Paragraphs()[0].Runs()[0].GetFont()
	if nf.Size != 14 || !nf.Italic || colorRGB(nf.Color) != "808080" {
		t.Errorf("note font = %+v, want 14pt italic gray", nf)
	}

	noNote := c.ContentSlide("Topic", []string{"a"}, "")
	if noNote.ShapeCount() != 2 {
		t.Errorf("expected 2 regions without note, got %d", noNote.ShapeCount())
	}
}

func TestDiagramSlide(t *testing.T) {
	c := NewComposer(nil)
	slide := c.DiagramSlide("Flow", "A ──► B ──► C", []string{"step one", "step two"})

	if slide.ShapeCount() != 3 {
		t.Fatalf("expected 3 regions, got %d", slide.ShapeCount())
	}

	box := slide.Shapes()[1].(*BoxShape)
	if colorRGB(box.GetFill().Color) != "F0F0F0" {
		t.Errorf("diagram fill = %s, want F0F0F0", colorRGB(box.GetFill().Color))
	}
	if box.GetBorder().Style != BorderSolid || colorRGB(box.GetBorder().Color) != "C8C8C8" {
		t.Errorf("diagram border = %+v, want solid C8C8C8", box.GetBorder())
	}
	df := box.Paragraphs()[0].Runs()[0].GetFont()
	if df.Name != "Courier New" || df.Size != 14 {
		t.Errorf("diagram font = %+v, want 14pt Courier New", df)
	}

	bullets := slide.Shapes()[2].(*TextBoxShape)
	if bullets.GetOffsetY() != Inch(4.2) {
		t.Errorf("bullets top = %d, want %d", bullets.GetOffsetY(), Inch(4.2))
	}
	for i, p := range bullets.Paragraphs() {
		if p.GetSpaceBefore() != 800 {
			t.Errorf("bullet %d spaceBefore = %d, want 800", i, p.GetSpaceBefore())
		}
		if f := p.Runs()[0].GetFont(); f.Size != 18 {
			t.Errorf("bullet %d size = %d, want 18", i, f.Size)
		}
	}
}

func TestDiagramSlideWithoutBullets(t *testing.T) {
	c := NewComposer(nil)
	slide := c.DiagramSlide("Flow", "A → B", nil)
	if slide.ShapeCount() != 2 {
		t.Errorf("expected 2 regions without bullets, got %d", slide.ShapeCount())
	}
}

func TestTableSlideGrid(t *testing.T) {
	c := NewComposer(nil)
	slide, err := c.TableSlide("Metrics",
		[]string{"Metric", "Before", "After"},
		[][]any{{"Wave time", "45 min", "32 min"}})
	if err != nil {
		t.Fatalf("TableSlide: %v", err)
	}

	table, ok := slide.Shapes()[1].(*TableShape)
	if !ok {
		t.Fatalf("region 1 is %T, want *TableShape", slide.Shapes()[1])
	}
	if table.NumRows() != 2 || table.NumCols() != 3 {
		t.Fatalf("grid is %dx%d, want 2x3", table.NumRows(), table.NumCols())
	}

	head := table.GetCell(0, 0)
	if head.GetFill().Type != FillSolid || colorRGB(head.GetFill().Color) != "0070C0" {
		t.Errorf("header cell fill = %+v, want solid 0070C0", head.GetFill())
	}
	hf := head.Paragraphs()[0].Runs()[0].GetFont()
	if hf.Size != 14 || !hf.Bold || colorRGB(hf.Color) != "FFFFFF" {
		t.Errorf("header font = %+v, want 14pt bold white", hf)
	}
	if head.Text() != "Metric" {
		t.Errorf("header text = %q", head.Text())
	}

	cell := table.GetCell(1, 2)
	if cell.Text() != "32 min" {
		t.Errorf("cell (1,2) = %q, want \"32 min\"", cell.Text())
	}
	if f := cell.Paragraphs()[0].Runs()[0].GetFont(); f.Size != 12 {
		t.Errorf("cell font size = %d, want 12", f.Size)
	}
}

func TestTableSlideRaggedRow(t *testing.T) {
	c := NewComposer(nil)
	_, err := c.TableSlide("Bad",
		[]string{"A", "B", "C"},
		[][]any{
			{"ok", "ok", "ok"},
			{"short", "row"},
		})
	if err == nil {
		t.Fatal("expected error for ragged row")
	}
	var rre *RaggedRowError
	if !errors.As(err, &rre) {
		t.Fatalf("error is %T, want *RaggedRowError", err)
	}
	if rre.Row != 1 || rre.Cells != 2 || rre.Columns != 3 {
		t.Errorf("RaggedRowError = %+v, want Row=1 Cells=2 Columns=3", rre)
	}
}

func TestTableSlideEmptyHeaders(t *testing.T) {
	c := NewComposer(nil)
	if _, err := c.TableSlide("Bad", nil, nil); err == nil {
		t.Fatal("expected error for empty headers")
	}
}

func TestTableSlideValueCoercion(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"text", "text"},
		{42, "42"},
		{3.5, "3.5"},
		{1.0, "1"},
		{true, "true"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := formatCellValue(tc.in); got != tc.want {
			t.Errorf("formatCellValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHeaderBandUniform(t *testing.T) {
	c := NewComposer(nil)
	slides := []*Slide{
		c.ContentSlide("A", []string{"x"}, ""),
		c.DiagramSlide("B", "flow", nil),
	}
	tbl, err := c.TableSlide("C", []string{"H"}, nil)
	if err != nil {
		t.Fatalf("TableSlide: %v", err)
	}
	slides = append(slides, tbl)

	for i, slide := range slides {
		band, ok := slide.Shapes()[0].(*BoxShape)
		if !ok {
			t.Fatalf("slide %d region 0 is %T, want *BoxShape", i, slide.Shapes()[0])
		}
		if band.GetOffsetX() != 0 || band.GetOffsetY() != 0 {
			t.Errorf("slide %d band not at origin", i)
		}
		if band.GetWidth() != Inch(10) || band.GetHeight() != Inch(1.2) {
			t.Errorf("slide %d band is %dx%d, want %dx%d",
				i, band.GetWidth(), band.GetHeight(), Inch(10), Inch(1.2))
		}
		if f := band.Paragraphs()[0].Runs()[0].GetFont(); f.Size != 32 || !f.Bold {
			t.Errorf("slide %d band font = %+v, want 32pt bold", i, f)
		}
	}
}

func TestComposerDeterministic(t *testing.T) {
	specs := []SlideSpec{
		{Kind: KindTitle, Title: "T", Subtitle: "S"},
		{Kind: KindContent, Title: "C", Bullets: []string{"a", "", "b"}, Note: "n"},
		{Kind: KindDiagram, Title: "D", Diagram: "x → y", Bullets: []string{"1"}},
		{Kind: KindTable, Title: "G", Headers: []string{"H"}, Rows: [][]any{{"v"}}},
	}

	c := NewComposer(nil)
	d1, err := c.BuildDeck(specs)
	if err != nil {
		t.Fatalf("BuildDeck: %v", err)
	}
	d2, err := c.BuildDeck(specs)
	if err != nil {
		t.Fatalf("BuildDeck: %v", err)
	}
	if !reflect.DeepEqual(d1.Slides(), d2.Slides()) {
		t.Error("identical specs produced different slides")
	}
}

func TestBuildUnknownKind(t *testing.T) {
	c := NewComposer(nil)
	_, err := c.BuildDeck([]SlideSpec{
		{Kind: KindTitle, Title: "ok"},
		{Kind: "chart", Title: "bad"},
	})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	var uk *UnknownKindError
	if !errors.As(err, &uk) {
		t.Fatalf("error is %T, want *UnknownKindError", err)
	}
	if uk.Index != 1 || uk.Kind != "chart" {
		t.Errorf("UnknownKindError = %+v, want Index=1 Kind=chart", uk)
	}
}

func TestBuildDeckRaggedRowAborts(t *testing.T) {
	c := NewComposer(nil)
	_, err := c.BuildDeck([]SlideSpec{
		{Kind: KindTable, Title: "bad", Headers: []string{"A", "B"}, Rows: [][]any{{"only"}}},
	})
	var rre *RaggedRowError
	if !errors.As(err, &rre) {
		t.Fatalf("error is %T, want wrapped *RaggedRowError", err)
	}
}

func TestBuildDeckFullRoundTrip(t *testing.T) {
	specs := []SlideSpec{
		{Kind: KindTitle, Title: "Warehouse Buffer Zone Optimization", Subtitle: "WMS Buffer Management System"},
		{Kind: KindDiagram, Title: "1. Current Situation",
			Diagram: "STORAGE ──► BUFFER ──► PICKING",
			Bullets: []string{"• forklifts feed the buffer", "• pickers drain it"}},
		{Kind: KindTable, Title: "2. Losses",
			Headers: []string{"Situation", "Consequences"},
			Rows: [][]any{
				{"Buffer empty", "Pickers idle"},
				{"Buffer full", "Forklifts wait"},
			}},
		{Kind: KindContent, Title: "3. Summary",
			Bullets: []string{"Forecast", "", "Plan", "", "Execute"},
			Note:    "Cycle repeats every 15 minutes"},
	}

	c := NewComposer(nil)
	d, err := c.BuildDeck(specs)
	if err != nil {
		t.Fatalf("BuildDeck: %v", err)
	}
	if d.SlideCount() != len(specs) {
		t.Fatalf("deck has %d slides, want %d", d.SlideCount(), len(specs))
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	info := roundTrip(t, d)
	if info.SlideCount != len(specs) {
		t.Fatalf("read back %d slides, want %d", info.SlideCount, len(specs))
	}

	// Slide order and titles survive serialization.
	wantFirst := []string{
		"Warehouse Buffer Zone Optimization",
		"1. Current Situation",
		"2. Losses",
		"3. Summary",
	}
	for i, want := range wantFirst {
		if len(info.SlideTexts[i]) == 0 || info.SlideTexts[i][0] != want {
			t.Errorf("slide %d first text = %v, want %q", i, info.SlideTexts[i], want)
		}
	}

	// Table content lands in the grid.
	found := false
	for _, text := range info.SlideTexts[2] {
		if text == "Forklifts wait" {
			found = true
		}
	}
	if !found {
		t.Errorf("table cell text missing from slide 3: %v", info.SlideTexts[2])
	}
}
