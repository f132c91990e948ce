package layout

import (
	"fmt"
	"strings"
)

// Side selects the edge of a rectangle an operation acts on.
type Side uint8

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// String returns the lowercase name of the side.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the four named sides.
func (s Side) Valid() bool {
	return s <= Right
}

// Vertical returns true for Top and Bottom, whose splits stack pieces vertically.
func (s Side) Vertical() bool {
	return s == Top || s == Bottom
}

// ParseSide converts a side name to a Side. Short forms "bot", "lef" and "rig" are accepted.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return Top, nil
	case "bottom", "bot":
		return Bottom, nil
	case "left", "lef":
		return Left, nil
	case "right", "rig":
		return Right, nil
	default:
		return 0, invalidArgument("parse side", "unknown side %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, invalidArgument("marshal side", "unknown side %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
