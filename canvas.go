package deck

import "time"

// Canvas represents the fixed drawing surface shared by every slide
// in a deck. Dimensions are in EMU and never change after deck start.
type Canvas struct {
	CX int64 // width in EMU
	CY int64 // height in EMU
}

// Default canvas dimensions: 10 x 7.5 inches (4:3).
const (
	defaultCanvasCX = int64(10 * emuPerInch)
	defaultCanvasCY = int64(7.5 * emuPerInch)
)

// NewCanvas creates the default 10 x 7.5 inch canvas.
func NewCanvas() *Canvas {
	return &Canvas{CX: defaultCanvasCX, CY: defaultCanvasCY}
}

// SetSize sets custom canvas dimensions in EMU.
// Non-positive values fall back to the defaults.
func (c *Canvas) SetSize(cx, cy int64) {
	if cx <= 0 {
		cx = defaultCanvasCX
	}
	if cy <= 0 {
		cy = defaultCanvasCY
	}
	c.CX = cx
	c.CY = cy
}

// DocumentProperties holds standard document properties written to the
// output file's core and extended property parts.
type DocumentProperties struct {
	Creator        string
	LastModifiedBy string
	Created        time.Time
	Modified       time.Time
	Title          string
	Subject        string
	Description    string
	Company        string
}

// NewDocumentProperties creates new document properties with defaults.
func NewDocumentProperties() *DocumentProperties {
	now := time.Now()
	return &DocumentProperties{
		Creator:        "WMSOpti",
		LastModifiedBy: "WMSOpti",
		Created:        now,
		Modified:       now,
	}
}
