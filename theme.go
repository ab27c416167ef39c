package deck

// Theme is the shared set of colors, fonts, and sizes applied uniformly
// across all slides of a deck. A Theme is constructed once and passed
// into the Composer; it is never mutated during composition.
type Theme struct {
	// HeaderColor fills the title banner and every header band.
	HeaderColor Color
	// AccentColor fills table header rows.
	AccentColor Color
	// TitleTextColor is the text color on header/banner fills.
	TitleTextColor Color
	BodyTextColor  Color
	SubtitleColor  Color
	NoteColor      Color

	DiagramFill   Color
	DiagramBorder Color

	// BodyFont is the proportional font used everywhere except diagrams.
	BodyFont string
	// MonoFont renders diagram text. A fixed-pitch face is required to
	// keep manual ASCII-art alignment intact.
	MonoFont string

	// Font sizes in points.
	TitleSize         int // title-slide banner
	SubtitleSize      int
	HeaderSize        int // header band
	BodySize          int // content bullets
	DiagramSize       int
	DiagramBulletSize int
	NoteSize          int
	TableHeadSize     int
	TableCellSize     int
}

// DefaultTheme returns the fixed deck theme.
func DefaultTheme() *Theme {
	return &Theme{
		HeaderColor:    NewColor("0070C0"),
		AccentColor:    NewColor("0070C0"),
		TitleTextColor: ColorWhite,
		BodyTextColor:  ColorBlack,
		SubtitleColor:  NewColor("646464"),
		NoteColor:      NewColor("808080"),

		DiagramFill:   NewColor("F0F0F0"),
		DiagramBorder: NewColor("C8C8C8"),

		BodyFont: "Calibri",
		MonoFont: "Courier New",

		TitleSize:         40,
		SubtitleSize:      24,
		HeaderSize:        32,
		BodySize:          20,
		DiagramSize:       14,
		DiagramBulletSize: 18,
		NoteSize:          14,
		TableHeadSize:     14,
		TableCellSize:     12,
	}
}
