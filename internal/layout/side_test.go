package layout

import (
	"errors"
	"testing"
)

func TestParseSide(t *testing.T) {
	type tc struct {
		input    string
		expected Side
		wantErr  bool
	}

	tests := map[string]tc{
		"top":        {input: "top", expected: Top},
		"bottom":     {input: "bottom", expected: Bottom},
		"short bot":  {input: "bot", expected: Bottom},
		"left":       {input: "left", expected: Left},
		"short lef":  {input: "lef", expected: Left},
		"right":      {input: "right", expected: Right},
		"short rig":  {input: "rig", expected: Right},
		"mixed case": {input: " Right ", expected: Right},
		"unknown":    {input: "middle", wantErr: true},
		"empty":      {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSide(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ParseSide(%q) error = %v, want ErrInvalidArgument", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSide(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSide(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSide_StringRoundTrip(t *testing.T) {
	for _, s := range []Side{Top, Bottom, Left, Right} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error = %v", s, err)
		}
		var back Side
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if back != s {
			t.Errorf("round trip of %v = %v", s, back)
		}
	}

	if _, err := Side(4).MarshalText(); err == nil {
		t.Error("MarshalText() on unknown side succeeded")
	}
	if got := Side(4).String(); got != "Side(4)" {
		t.Errorf("String() = %q, want %q", got, "Side(4)")
	}
}

func TestSide_Vertical(t *testing.T) {
	tests := map[Side]bool{Top: true, Bottom: true, Left: false, Right: false}
	for side, want := range tests {
		if got := side.Vertical(); got != want {
			t.Errorf("%v.Vertical() = %v, want %v", side, got, want)
		}
	}
}
