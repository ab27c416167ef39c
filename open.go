package deck

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// DeckInfo is a lightweight summary of a previously written PPTX file:
// the slide count, the presentation title, and the text content of each
// slide in order. It supports inspection and verification without
// reconstructing the full region model.
type DeckInfo struct {
	Title      string
	SlideCount int
	SlideTexts [][]string // per slide, in paragraph order
}

// Open reads a PPTX file from disk and summarizes it.
func Open(path string) (*DeckInfo, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pptx: %w", err)
	}
	defer zr.Close()
	return readArchive(&zr.Reader)
}

// ReadFrom reads a PPTX from an io.ReaderAt with the given size.
func ReadFrom(r io.ReaderAt, size int64) (*DeckInfo, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read pptx: %w", err)
	}
	return readArchive(zr)
}

// OpenFile reads a PPTX from an open file.
func OpenFile(f *os.File) (*DeckInfo, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return ReadFrom(f, info.Size())
}

func readArchive(zr *zip.Reader) (*DeckInfo, error) {
	di := &DeckInfo{}

	type slideFile struct {
		num  int
		file *zip.File
	}
	var slides []slideFile

	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml"):
			numStr := strings.TrimSuffix(strings.TrimPrefix(f.Name, "ppt/slides/slide"), ".xml")
			num, err := strconv.Atoi(numStr)
			if err != nil {
				continue
			}
			slides = append(slides, slideFile{num: num, file: f})
		case f.Name == "docProps/core.xml":
			title, err := readCoreTitle(f)
			if err != nil {
				return nil, err
			}
			di.Title = title
		}
	}

	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	for _, sf := range slides {
		texts, err := readSlideTexts(sf.file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", sf.file.Name, err)
		}
		di.SlideTexts = append(di.SlideTexts, texts)
	}
	di.SlideCount = len(slides)

	return di, nil
}

func readCoreTitle(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "title" {
			var title string
			if err := dec.DecodeElement(&title, &se); err != nil {
				return "", err
			}
			return title, nil
		}
	}
}

// readSlideTexts scans a slide part for <a:t> elements, joining runs
// within a paragraph and emitting one string per non-empty paragraph.
func readSlideTexts(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var texts []string
	var current strings.Builder
	inParagraph := false

	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				var s string
				if err := dec.DecodeElement(&s, &t); err != nil {
					return nil, err
				}
				current.WriteString(s)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				if current.Len() > 0 {
					texts = append(texts, current.String())
				}
				inParagraph = false
			}
		}
	}
	return texts, nil
}
