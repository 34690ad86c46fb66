package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/returnspell/core"
)

// CoerceInt converts a loosely typed value to int
// nil, empty strings, NaN and unparseable strings yield fallback
// Floats and numeric strings with a fraction are truncated toward zero
func CoerceInt(v any, fallback int) int {
	switch n := v.(type) {
	case nil:
		return fallback
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint8:
		return int(n)
	case float32:
		return truncFloat(float64(n), fallback)
	case float64:
		return truncFloat(n, fallback)
	case bool:
		if n {
			return 1
		}
		return fallback
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return fallback
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return truncFloat(f, fallback)
		}
		return fallback
	}
	return fallback
}

func truncFloat(f float64, fallback int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return int(f)
}

// CoerceBool is true only for a boolean true or the literal string "true"
func CoerceBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}
	return false
}

// CoerceString converts scalars to string; nil yields fallback
func CoerceString(v any, fallback string) string {
	switch s := v.(type) {
	case nil:
		return fallback
	case string:
		return s
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	}
	return fallback
}

// CoerceFadeType accepts codes 0-2, their string forms, or names
// A missing, empty or false value yields fallback. Any other unrecognized
// value fades black: only code 1 selects white and only code 2 disables fading
func CoerceFadeType(v any, fallback core.FadeType) core.FadeType {
	switch f := v.(type) {
	case nil:
		return fallback
	case core.FadeType:
		if f > core.FadeNone {
			return core.FadeBlack
		}
		return f
	case bool:
		if !f {
			return fallback
		}
	case string:
		if strings.TrimSpace(f) == "" {
			return fallback
		}
		if ft, err := core.ParseFadeType(f); err == nil {
			return ft
		}
	}
	switch CoerceInt(v, -1) {
	case int(core.FadeWhite):
		return core.FadeWhite
	case int(core.FadeNone):
		return core.FadeNone
	}
	return core.FadeBlack
}
