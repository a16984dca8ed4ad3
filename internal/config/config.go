// Package config resolves the CLI settings.
//
// Sources, lowest priority first:
//
//  1. built-in defaults
//  2. a TOML file (--config, or ./spanforest.toml when present)
//  3. SPANFOREST_* environment variables (SPANFOREST_LOG_LEVEL → log-level)
//  4. command-line flags that were explicitly set
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is read when no explicit config path is given and it exists.
const DefaultFile = "spanforest.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SPANFOREST_"

// ErrInvalid wraps every validation failure of the resolved settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the resolved settings shared by all subcommands.
// An empty Algorithm leaves the choice to each engine's own default.
type Config struct {
	Algorithm  string  `koanf:"algorithm" validate:"omitempty,oneof=prim kruskal"`
	Format     string  `koanf:"format" validate:"oneof=text json"`
	OneIndexed bool    `koanf:"one-indexed"`
	LogLevel   string  `koanf:"log-level" validate:"oneof=debug info warn error"`
	Epsilon    float64 `koanf:"epsilon" validate:"gte=0,lte=1"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"algorithm":   "",
		"format":      "text",
		"one-indexed": true,
		"log-level":   "warn",
		"epsilon":     1e-9,
	}
}

var validate = newValidator()

// newValidator reports fields by their koanf key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})

	return v
}

// Load merges all sources and validates the result.
// An empty path falls back to DefaultFile, silently skipped if missing;
// an explicit path must exist. f may be nil.
func Load(f *pflag.FlagSet, path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("config: flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field against its tag and names the first bad one.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s=%v (want %s %s)", ErrInvalid, fe.Field(), fe.Value(), fe.Tag(), fe.Param())
	}

	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

// envKey maps SPANFOREST_ONE_INDEXED to one-indexed.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
}

// mapProvider feeds a plain map to koanf.
type mapProvider map[string]any

func (p mapProvider) Read() (map[string]any, error) { return p, nil }

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}
