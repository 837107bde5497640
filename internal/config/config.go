// Package config holds interpreter settings. Values come from defaults, then
// an optional piet.toml file, then PIET_* environment variables; command
// line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"gitlab.com/efronlicht/enve"

	"piet/internal/interpreter"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "piet.toml"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// CodelSize is the edge length of one codel in pixels.
	CodelSize int `toml:"codel_size"`
	// Limit is the maximum number of steps to run.
	Limit int `toml:"limit"`
	// UnknownColor is "black" or "white": the colour given to pixels that
	// are not program colours.
	UnknownColor string `toml:"unknown_color"`
	// Prompt writes input prompts to stderr.
	Prompt bool  `toml:"prompt"`
	Debug  Debug `toml:"debug"`
}

type Debug struct {
	Interpreter bool `toml:"interpreter"`
	VM          bool `toml:"vm"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{CodelSize: 1, Limit: 10000, UnknownColor: "black"}
}

// Load returns the defaults overlaid with the TOML file at path and the
// environment. An empty path loads piet.toml from the working directory if
// it exists.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(FileName); err == nil {
			path = FileName
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("cannot read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse error in %s: %w", filepath.Base(path), err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from PIET_* environment variables. Unset
// variables leave the current value; unparsable ones are an error.
func (c *Config) ApplyEnv() error {
	return errors.Join(
		override(&c.CodelSize, strconv.Atoi, "PIET_CODEL_SIZE"),
		override(&c.Limit, strconv.Atoi, "PIET_LIMIT"),
		override(&c.UnknownColor, identity, "PIET_UNKNOWN_COLOR"),
		override(&c.Prompt, strconv.ParseBool, "PIET_PROMPT"),
		override(&c.Debug.Interpreter, strconv.ParseBool, "PIET_DEBUG_INTERPRETER"),
		override(&c.Debug.VM, strconv.ParseBool, "PIET_DEBUG_VM"),
	)
}

func identity(s string) (string, error) { return s, nil }

// override sets *dst from the environment variable key when it is set.
func override[T any](dst *T, parse func(string) (T, error), key string) error {
	if _, ok := os.LookupEnv(key); !ok {
		return nil
	}
	v, err := enve.Lookup(parse, key)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", key, err, ErrInvalid)
	}
	*dst = v
	return nil
}

func (c Config) Validate() error {
	if c.CodelSize <= 0 {
		return fmt.Errorf("codel size %d must be positive: %w", c.CodelSize, ErrInvalid)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("steps limit %d must be positive: %w", c.Limit, ErrInvalid)
	}
	if _, err := c.Unknown(); err != nil {
		return err
	}
	return nil
}

// Unknown returns the colour named by UnknownColor.
func (c Config) Unknown() (interpreter.Color, error) {
	switch c.UnknownColor {
	case "black":
		return interpreter.Black, nil
	case "white":
		return interpreter.White, nil
	}
	return interpreter.Black, fmt.Errorf("unknown color %q must be black or white: %w", c.UnknownColor, ErrInvalid)
}
