package core

import (
	"fmt"
	"strconv"
	"strings"
)

// FadeType selects the screen transition used around a transfer
// Numeric values match the host's transfer fade codes
type FadeType uint8

const (
	FadeBlack FadeType = iota
	FadeWhite
	FadeNone
)

// IsWhite reports whether the fade uses white instead of black
func (f FadeType) IsWhite() bool {
	return f == FadeWhite
}

// Enabled reports whether any visual transition is played
func (f FadeType) Enabled() bool {
	return f != FadeNone
}

func (f FadeType) String() string {
	switch f {
	case FadeBlack:
		return "black"
	case FadeWhite:
		return "white"
	case FadeNone:
		return "none"
	default:
		return fmt.Sprintf("FadeType(%d)", uint8(f))
	}
}

// ParseFadeType accepts either the numeric code or the name
func ParseFadeType(s string) (FadeType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "black":
		return FadeBlack, nil
	case "white":
		return FadeWhite, nil
	case "none":
		return FadeNone, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > int(FadeNone) {
		return FadeWhite, fmt.Errorf("invalid fade type %q", s)
	}
	return FadeType(n), nil
}

// UnmarshalText lets config decoders accept "black", "white", "none" or 0-2
func (f *FadeType) UnmarshalText(text []byte) error {
	v, err := ParseFadeType(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText encodes the fade type by name
func (f FadeType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
