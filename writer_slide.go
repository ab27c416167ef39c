package deck

import (
	"archive/zip"
	"fmt"
	"strings"
)

func (w *PPTXWriter) writeSlide(zw *zip.Writer, slide *Slide, slideNum int) error {
	var shapesXML strings.Builder
	shapeID := 2 // 1 is reserved for the group shape

	for _, shape := range slide.shapes {
		switch s := shape.(type) {
		case *BoxShape:
			shapesXML.WriteString(w.writeBoxShapeXML(s, &shapeID))
		case *TextBoxShape:
			shapesXML.WriteString(w.writeTextBoxShapeXML(s, &shapeID))
		case *TableShape:
			shapesXML.WriteString(w.writeTableShapeXML(s, &shapeID))
		}
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld>
    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
%s    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sld>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, shapesXML.String())

	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), content)
}

func (w *PPTXWriter) writeSlideRels(zw *zip.Writer, slideNum int) error {
	rels := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="%s">
  <Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>
</Relationships>`, nsRelationships, relTypeSlideLayout)
	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum), rels)
}

// --- Box Shape XML ---

func (w *PPTXWriter) writeBoxShapeXML(s *BoxShape, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.name
	if name == "" {
		name = fmt.Sprintf("Box %d", id)
	}

	fillXML := w.writeFillXML(s.GetFill())
	borderXML := w.writeBorderXML(s.GetBorder())

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvSpPr/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>
        <p:txBody>
          <a:bodyPr wrap="%s"%s/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, xmlEscape(name),
		s.offsetX, s.offsetY, s.width, s.height,
		fillXML, borderXML,
		boolToWrap(s.wordWrap), insetAttrs(&s.textFrame),
		w.writeParagraphsXML(s.paragraphs))
}

// --- Text Box Shape XML ---

func (w *PPTXWriter) writeTextBoxShapeXML(s *TextBoxShape, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.name
	if name == "" {
		name = fmt.Sprintf("TextBox %d", id)
	}

	fillXML := w.writeFillXML(s.GetFill())
	borderXML := w.writeBorderXML(s.GetBorder())

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvSpPr txBox="1"/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>
        <p:txBody>
          <a:bodyPr wrap="%s"%s/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, xmlEscape(name),
		s.offsetX, s.offsetY, s.width, s.height,
		fillXML, borderXML,
		boolToWrap(s.wordWrap), insetAttrs(&s.textFrame),
		w.writeParagraphsXML(s.paragraphs))
}

func boolToWrap(wrap bool) string {
	if wrap {
		return "square"
	}
	return "none"
}

// insetAttrs builds the text inset attributes for <a:bodyPr> in EMU.
func insetAttrs(t *textFrame) string {
	if !t.insetsSet {
		return ""
	}
	return fmt.Sprintf(` lIns="%d" tIns="%d" rIns="%d" bIns="%d"`,
		t.insetLeft, t.insetTop, t.insetRight, t.insetBottom)
}

// writeParagraphsXML emits all paragraphs of a text frame. A frame with
// no paragraphs still emits one empty <a:p/>; PresentationML requires
// at least one paragraph per text body.
func (w *PPTXWriter) writeParagraphsXML(paragraphs []*Paragraph) string {
	if len(paragraphs) == 0 {
		return "          <a:p/>\n"
	}
	var sb strings.Builder
	for _, para := range paragraphs {
		sb.WriteString(w.writeParagraphXML(para))
	}
	return sb.String()
}

func (w *PPTXWriter) writeParagraphXML(para *Paragraph) string {
	algn := ""
	if para.alignment.Horizontal != "" {
		algn = fmt.Sprintf(` algn="%s"`, para.alignment.Horizontal)
	}

	spacing := ""
	if para.spaceBefore > 0 {
		spacing = fmt.Sprintf(`
            <a:spcBef><a:spcPts val="%d"/></a:spcBef>`, para.spaceBefore)
	}

	var runsXML strings.Builder
	for _, tr := range para.runs {
		runsXML.WriteString(w.writeTextRunXML(tr))
	}

	return fmt.Sprintf(`          <a:p>
            <a:pPr%s>%s
            </a:pPr>
%s          </a:p>
`, algn, spacing, runsXML.String())
}

func (w *PPTXWriter) writeTextRunXML(tr *TextRun) string {
	font := tr.font
	attrs := fmt.Sprintf(` lang="en-US" sz="%d" dirty="0"`, font.Size*100)

	if font.Bold {
		attrs += ` b="1"`
	}
	if font.Italic {
		attrs += ` i="1"`
	}

	solidFill := ""
	if font.Color.ARGB != "" {
		solidFill = fmt.Sprintf(`
              <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, colorRGB(font.Color))
	}

	latin := ""
	if font.Name != "" {
		latin = fmt.Sprintf(`
              <a:latin typeface="%s"/>`, xmlEscape(font.Name))
	}

	return fmt.Sprintf(`            <a:r>
              <a:rPr%s>%s%s
              </a:rPr>
              <a:t>%s</a:t>
            </a:r>
`, attrs, solidFill, latin, xmlEscape(tr.text))
}

// --- Table Shape XML ---

func (w *PPTXWriter) writeTableShapeXML(s *TableShape, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.name
	if name == "" {
		name = fmt.Sprintf("Table %d", id)
	}

	colWidth := int64(0)
	if s.numCols > 0 {
		colWidth = s.width / int64(s.numCols)
	}

	var gridCols strings.Builder
	for i := 0; i < s.numCols; i++ {
		gridCols.WriteString(fmt.Sprintf(`            <a:gridCol w="%d"/>
`, colWidth))
	}

	rowHeight := int64(0)
	if s.numRows > 0 {
		rowHeight = s.height / int64(s.numRows)
	}

	var rowsXML strings.Builder
	for i := 0; i < s.numRows; i++ {
		rowsXML.WriteString(fmt.Sprintf(`            <a:tr h="%d">
`, rowHeight))
		for j := 0; j < s.numCols; j++ {
			rowsXML.WriteString(w.writeTableCellXML(s.rows[i][j]))
		}
		rowsXML.WriteString("            </a:tr>\n")
	}

	return fmt.Sprintf(`      <p:graphicFrame>
        <p:nvGraphicFramePr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvGraphicFramePr>
            <a:graphicFrameLocks noGrp="1"/>
          </p:cNvGraphicFramePr>
          <p:nvPr/>
        </p:nvGraphicFramePr>
        <p:xfrm>
          <a:off x="%d" y="%d"/>
          <a:ext cx="%d" cy="%d"/>
        </p:xfrm>
        <a:graphic>
          <a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">
            <a:tbl>
              <a:tblPr firstRow="1" bandRow="1"/>
              <a:tblGrid>
%s              </a:tblGrid>
%s            </a:tbl>
          </a:graphicData>
        </a:graphic>
      </p:graphicFrame>
`, id, xmlEscape(name),
		s.offsetX, s.offsetY, s.width, s.height,
		gridCols.String(), rowsXML.String())
}

func (w *PPTXWriter) writeTableCellXML(cell *TableCell) string {
	cellFill := ""
	if cell.fill != nil && cell.fill.Type == FillSolid {
		cellFill = fmt.Sprintf(`
                  <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, colorRGB(cell.fill.Color))
	}

	var cellText strings.Builder
	for _, para := range cell.paragraphs {
		cellText.WriteString("                <a:p>\n")
		for _, tr := range para.runs {
			cellText.WriteString(w.writeTableRunXML(tr))
		}
		cellText.WriteString("                </a:p>\n")
	}

	return fmt.Sprintf(`              <a:tc>
                <a:txBody>
                  <a:bodyPr/>
                  <a:lstStyle/>
%s                </a:txBody>
                <a:tcPr>%s
                </a:tcPr>
              </a:tc>
`, cellText.String(), cellFill)
}

func (w *PPTXWriter) writeTableRunXML(tr *TextRun) string {
	font := tr.font
	attrs := fmt.Sprintf(` lang="en-US" sz="%d" dirty="0"`, font.Size*100)
	if font.Bold {
		attrs += ` b="1"`
	}
	if font.Italic {
		attrs += ` i="1"`
	}

	solidFill := ""
	if font.Color.ARGB != "" {
		solidFill = fmt.Sprintf(`
                      <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, colorRGB(font.Color))
	}

	latin := ""
	if font.Name != "" {
		latin = fmt.Sprintf(`
                      <a:latin typeface="%s"/>`, xmlEscape(font.Name))
	}

	return fmt.Sprintf(`                  <a:r>
                    <a:rPr%s>%s%s
                    </a:rPr>
                    <a:t>%s</a:t>
                  </a:r>
`, attrs, solidFill, latin, xmlEscape(tr.text))
}

// --- Fill and Border helpers ---

func (w *PPTXWriter) writeFillXML(f *Fill) string {
	if f == nil || f.Type != FillSolid {
		return ""
	}
	return fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", colorRGB(f.Color))
}

func (w *PPTXWriter) writeBorderXML(b *Border) string {
	if b == nil || b.Style == BorderNone {
		return ""
	}
	return fmt.Sprintf("          <a:ln w=\"%d\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:ln>\n",
		b.Width, colorRGB(b.Color))
}
