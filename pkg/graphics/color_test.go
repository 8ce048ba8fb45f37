package graphics

import (
	"image/color"
	"testing"
)

func TestBlendHalf(t *testing.T) {
	tests := []struct {
		c0, c1, want Color
	}{
		{ColorWhite, ColorBlack, 0xFE7F7F7F},
		{ColorWhite, ColorWhite, 0xFEFEFEFE},
		{ColorTransparent, ColorTransparent, ColorTransparent},
		{0xFF0000FF, 0xFF00FF00, 0xFE007F7F},
		{0xFF03AFFF, 0xFFFFFFFF, 0xFE80D6FE},
	}
	for _, tt := range tests {
		if got := BlendHalf(tt.c0, tt.c1); got != tt.want {
			t.Errorf("BlendHalf(%v, %v) = %v, want %v", tt.c0, tt.c1, got, tt.want)
		}
	}
}

func TestBlendHalf_NoCarryBetweenChannels(t *testing.T) {
	got := BlendHalf(0x01010101, 0x01010101)
	if got != 0 {
		t.Fatalf("BlendHalf of low bits = %v, want 0", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#03AFFF", 0xFF03AFFF, false},
		{"03afff", 0xFF03AFFF, false},
		{"#8003AFFF", 0x8003AFFF, false},
		{"#fff", 0xFFFFFFFF, false},
		{" #50C7FF ", 0xFF50C7FF, false},
		{"#12345", 0, true},
		{"#GGGGGG", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColor_TextRoundTrip(t *testing.T) {
	c := Color(0xFF50C7FF)
	text, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "#FF50C7FF" {
		t.Fatalf("MarshalText = %s", text)
	}
	var back Color
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back != c {
		t.Fatalf("round trip = %v, want %v", back, c)
	}
}

func TestColor_ImplementsColorColor(t *testing.T) {
	var c color.Color = RGBA8(255, 0, 0, 128)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.R != 255 || n.A != 128 {
		t.Fatalf("converted = %+v", n)
	}
	if FromColor(c) != RGBA8(255, 0, 0, 128) {
		t.Fatalf("FromColor = %v", FromColor(c))
	}
}

func TestColor_WithAlpha(t *testing.T) {
	c := RGB(3, 175, 255).WithAlpha(0.5)
	if c != 0x8003AFFF {
		t.Fatalf("WithAlpha(0.5) = %v", c)
	}
	if got := RGB(1, 2, 3).WithAlpha(2); got.Alpha() != 1 {
		t.Fatalf("alpha clamp = %v", got.Alpha())
	}
}
