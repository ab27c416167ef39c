package deck

import "testing"

func TestNewColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0070C0", "FF0070C0"},
		{"#0070C0", "FF0070C0"},
		{"FF0070C0", "FF0070C0"},
		{"ff0070c0", "FF0070C0"},
		{"bogus", "FF000000"},
		{"12345", "FF000000"},
		{"", "FF000000"},
	}
	for _, tc := range cases {
		if got := NewColor(tc.in).ARGB; got != tc.want {
			t.Errorf("NewColor(%q).ARGB = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestColorComponents(t *testing.T) {
	c := NewColor("0070C0")
	if c.GetRed() != 0x00 || c.GetGreen() != 0x70 || c.GetBlue() != 0xC0 {
		t.Errorf("components = %d,%d,%d, want 0,112,192", c.GetRed(), c.GetGreen(), c.GetBlue())
	}
	if c.GetAlpha() != 0xFF {
		t.Errorf("alpha = %d, want 255", c.GetAlpha())
	}
}

func TestColorRGB(t *testing.T) {
	if got := colorRGB(NewColor("0070C0")); got != "0070C0" {
		t.Errorf("colorRGB = %q, want 0070C0", got)
	}
	if got := colorRGB(Color{ARGB: "bad"}); got != "000000" {
		t.Errorf("colorRGB on invalid = %q, want 000000", got)
	}
}

func TestFontSizeClamp(t *testing.T) {
	f := NewFont()
	if f.SetSize(0).Size != 1 {
		t.Errorf("SetSize(0) = %d, want 1", f.Size)
	}
	if f.SetSize(5000).Size != 4000 {
		t.Errorf("SetSize(5000) = %d, want 4000", f.Size)
	}
	if f.SetSize(20).Size != 20 {
		t.Errorf("SetSize(20) = %d, want 20", f.Size)
	}
}

func TestFontChaining(t *testing.T) {
	f := NewFont().SetBold(true).SetItalic(true).SetSize(14).SetColor(ColorWhite).SetName("Courier New")
	if !f.Bold || !f.Italic || f.Size != 14 || f.Name != "Courier New" {
		t.Errorf("chained font = %+v", f)
	}
	if f.Color != ColorWhite {
		t.Errorf("color = %+v, want white", f.Color)
	}
}

func TestFillAndBorder(t *testing.T) {
	fill := NewFill()
	if fill.Type != FillNone {
		t.Error("new fill should be FillNone")
	}
	fill.SetSolid(ColorRed)
	if fill.Type != FillSolid || fill.Color != ColorRed {
		t.Errorf("solid fill = %+v", fill)
	}

	border := NewBorder()
	if border.Style != BorderNone {
		t.Error("new border should be BorderNone")
	}
	border.SetSolid(ColorBlue, 9525)
	if border.Style != BorderSolid || border.Width != 9525 || border.Color != ColorBlue {
		t.Errorf("solid border = %+v", border)
	}
}

func TestMeasureConversions(t *testing.T) {
	if Inch(1) != 914400 {
		t.Errorf("Inch(1) = %d", Inch(1))
	}
	if Point(1) != 12700 {
		t.Errorf("Point(1) = %d", Point(1))
	}
	if Centimeter(1) != 360000 {
		t.Errorf("Centimeter(1) = %d", Centimeter(1))
	}
	if got := EMUToInch(914400); got != 1.0 {
		t.Errorf("EMUToInch(914400) = %v", got)
	}
	if got := EMUToPoint(12700); got != 1.0 {
		t.Errorf("EMUToPoint(12700) = %v", got)
	}
}
