package main

import (
	"bytes"
	"testing"

	deck "github.com/OnicaIon/WMSOpti"
)

func TestDeckSpecsCount(t *testing.T) {
	if got := len(deckSpecs()); got != 14 {
		t.Fatalf("deckSpecs returned %d slides, want 14", got)
	}
}

func TestDeckSpecsRoundTrip(t *testing.T) {
	specs := deckSpecs()
	d, err := deck.NewComposer(nil).BuildDeck(specs)
	if err != nil {
		t.Fatalf("BuildDeck: %v", err)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	var buf bytes.Buffer
	if err := d.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	data := buf.Bytes()
	info, err := deck.ReadFrom(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	if info.SlideCount != 14 {
		t.Fatalf("serialized deck has %d slides, want 14", info.SlideCount)
	}

	// Every slide leads with its title, in deck order.
	for i, spec := range specs {
		if len(info.SlideTexts[i]) == 0 {
			t.Errorf("slide %d has no text, want title %q", i+1, spec.Title)
			continue
		}
		if got := info.SlideTexts[i][0]; got != spec.Title {
			t.Errorf("slide %d first text = %q, want %q", i+1, got, spec.Title)
		}
	}
}
