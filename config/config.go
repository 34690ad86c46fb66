// Package config resolves the return spell plugin parameters
// Parameters arrive as loosely typed values (TOML scalars or environment
// strings) and are coerced the way the host treats plugin parameters:
// a missing or unparseable value falls back to its default.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/parameter"
)

// Parameter keys as they appear in the config file
const (
	KeyDefaultMap    = "default_map"
	KeyDefaultX      = "default_x"
	KeyDefaultY      = "default_y"
	KeyFadeType      = "fade_type"
	KeySEName        = "se_name"
	KeyAllowInBattle = "allow_in_battle"
	KeyLocale        = "locale"
)

// Config is the resolved plugin configuration
type Config struct {
	DefaultPoint  core.ReturnPoint
	FadeType      core.FadeType
	SEName        string
	AllowInBattle bool
	Locale        string
}

// envParams mirrors the parameter keys as environment variables
// Empty values are treated as unset
type envParams struct {
	DefaultMap    string `env:"RETURNSPELL_DEFAULT_MAP"`
	DefaultX      string `env:"RETURNSPELL_DEFAULT_X"`
	DefaultY      string `env:"RETURNSPELL_DEFAULT_Y"`
	FadeType      string `env:"RETURNSPELL_FADE_TYPE"`
	SEName        string `env:"RETURNSPELL_SE_NAME"`
	AllowInBattle string `env:"RETURNSPELL_ALLOW_IN_BATTLE"`
	Locale        string `env:"RETURNSPELL_LOCALE"`
}

// Default returns the configuration used when no parameters are supplied
func Default() Config {
	return Config{
		DefaultPoint: core.NewReturnPoint(
			parameter.DefaultReturnMap,
			parameter.DefaultReturnX,
			parameter.DefaultReturnY,
		),
		FadeType:      core.FadeWhite,
		SEName:        parameter.DefaultReturnSE,
		AllowInBattle: false,
		Locale:        parameter.DefaultLocale,
	}
}

// FromParams builds a Config from raw plugin parameters
// Unknown keys are ignored; every recognized key is coerced with its fallback
func FromParams(params map[string]any) Config {
	cfg := Default()

	cfg.DefaultPoint.MapID = CoerceInt(params[KeyDefaultMap], parameter.DefaultReturnMap)
	cfg.DefaultPoint.X = CoerceInt(params[KeyDefaultX], parameter.DefaultReturnX)
	cfg.DefaultPoint.Y = CoerceInt(params[KeyDefaultY], parameter.DefaultReturnY)
	cfg.FadeType = CoerceFadeType(params[KeyFadeType], core.FadeWhite)

	// Present-but-empty disables the cue; absent keeps the default cue
	if v, ok := params[KeySEName]; ok {
		cfg.SEName = CoerceString(v, "")
	}

	cfg.AllowInBattle = CoerceBool(params[KeyAllowInBattle])
	cfg.Locale = CoerceString(params[KeyLocale], parameter.DefaultLocale)
	if cfg.Locale == "" {
		cfg.Locale = parameter.DefaultLocale
	}

	return cfg
}

// Parse decodes TOML parameter data
func Parse(data []byte) (map[string]any, error) {
	params := make(map[string]any)
	if _, err := toml.Decode(string(data), &params); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return params, nil
}

// ReadFile loads raw parameters from a TOML file
// A missing file yields an empty parameter set
func ReadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// ApplyEnv overlays non-empty environment values onto params
// environ nil reads the process environment
func ApplyEnv(params map[string]any, environ map[string]string) error {
	var e envParams
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	overlay := map[string]string{
		KeyDefaultMap:    e.DefaultMap,
		KeyDefaultX:      e.DefaultX,
		KeyDefaultY:      e.DefaultY,
		KeyFadeType:      e.FadeType,
		KeySEName:        e.SEName,
		KeyAllowInBattle: e.AllowInBattle,
		KeyLocale:        e.Locale,
	}
	for k, v := range overlay {
		if v != "" {
			params[k] = v
		}
	}
	return nil
}

// Load reads the config file at path, applies environment overrides and coerces
func Load(path string) (Config, error) {
	params, err := ReadFile(path)
	if err != nil {
		return Default(), err
	}
	if err := ApplyEnv(params, nil); err != nil {
		return Default(), err
	}
	return FromParams(params), nil
}
