package deck

import "fmt"

// SlideKind selects which archetype a SlideSpec builds.
type SlideKind string

const (
	KindTitle   SlideKind = "title"
	KindContent SlideKind = "content"
	KindDiagram SlideKind = "diagram"
	KindTable   SlideKind = "table"
)

// SlideSpec is the declarative description of one slide. Only the
// fields relevant to its Kind are consulted; the rest are ignored.
type SlideSpec struct {
	Kind     SlideKind
	Title    string
	Subtitle string   // title slides
	Bullets  []string // content and diagram slides
	Diagram  string   // diagram slides
	Note     string   // content slides
	Headers  []string // table slides
	Rows     [][]any  // table slides
}

// UnknownKindError reports a SlideSpec whose Kind matches no archetype.
type UnknownKindError struct {
	Index int // position in the spec list, -1 for a single Build call
	Kind  SlideKind
}

func (e *UnknownKindError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("unknown slide kind %q", e.Kind)
	}
	return fmt.Sprintf("slide %d: unknown slide kind %q", e.Index, e.Kind)
}

// Build composes a single slide from its spec.
func (c *Composer) Build(spec SlideSpec) (*Slide, error) {
	switch spec.Kind {
	case KindTitle:
		return c.TitleSlide(spec.Title, spec.Subtitle), nil
	case KindContent:
		return c.ContentSlide(spec.Title, spec.Bullets, spec.Note), nil
	case KindDiagram:
		return c.DiagramSlide(spec.Title, spec.Diagram, spec.Bullets), nil
	case KindTable:
		return c.TableSlide(spec.Title, spec.Headers, spec.Rows)
	default:
		return nil, &UnknownKindError{Index: -1, Kind: spec.Kind}
	}
}

// BuildDeck composes a full deck from an ordered spec list. Slides
// appear in the deck in list order. The first error aborts composition
// and no deck is returned.
func (c *Composer) BuildDeck(specs []SlideSpec) (*Deck, error) {
	d := New()
	for i, spec := range specs {
		slide, err := c.Build(spec)
		if err != nil {
			if uk, ok := err.(*UnknownKindError); ok {
				uk.Index = i
				return nil, uk
			}
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
		d.Append(slide)
	}
	return d, nil
}
