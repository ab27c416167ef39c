package deck

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer is the interface for deck writers.
type Writer interface {
	Save(path string) error
	WriteTo(w io.Writer) error
}

// WriterType represents the output format.
type WriterType string

const (
	WriterPowerPoint2007 WriterType = "PowerPoint2007"
)

// NewWriter creates a writer for the given format.
func NewWriter(d *Deck, format WriterType) (Writer, error) {
	switch format {
	case WriterPowerPoint2007:
		return &PPTXWriter{deck: d}, nil
	default:
		return nil, fmt.Errorf("unsupported writer format: %s", format)
	}
}

// PPTXWriter writes decks in PPTX format.
type PPTXWriter struct {
	deck *Deck
}

// Save writes the deck to a file. The archive is staged in a temporary
// file in the destination directory and renamed into place, so a failed
// serialization never leaves a partial file at path.
func (w *PPTXWriter) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	writeErr := w.WriteTo(tmp)
	closeErr := tmp.Close()

	if writeErr != nil {
		os.Remove(tmp.Name())
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmp.Name())
		return closeErr
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// WriteTo writes the deck to a writer.
func (w *PPTXWriter) WriteTo(writer io.Writer) error {
	if w.deck == nil {
		return fmt.Errorf("deck is nil")
	}

	zw := zip.NewWriter(writer)

	if err := w.writeContentTypes(zw); err != nil {
		return err
	}

	if err := w.writeRootRels(zw); err != nil {
		return err
	}

	if err := w.writeAppProperties(zw); err != nil {
		return err
	}

	if err := w.writeCoreProperties(zw); err != nil {
		return err
	}

	if err := w.writePresentation(zw); err != nil {
		return err
	}

	if err := w.writePresentationRels(zw); err != nil {
		return err
	}

	if err := w.writePresProps(zw); err != nil {
		return err
	}

	if err := w.writeViewProps(zw); err != nil {
		return err
	}

	if err := w.writeTableStyles(zw); err != nil {
		return err
	}

	if err := w.writeSlideMaster(zw); err != nil {
		return err
	}

	if err := w.writeSlideLayout(zw); err != nil {
		return err
	}

	if err := w.writeTheme(zw); err != nil {
		return err
	}

	for i, slide := range w.deck.slides {
		if err := w.writeSlide(zw, slide, i+1); err != nil {
			return err
		}
		if err := w.writeSlideRels(zw, i+1); err != nil {
			return err
		}
	}

	return zw.Close()
}
