// Package config reads the permgen configuration file.
//
// The file is TOML and supplies defaults for the generator flags. Flags set
// on the command line always win over the file.
//
//	# ~/.config/permgen/config.toml
//	algorithm = "plain"
//	format    = "json"
//	limit     = 1000
//	sort      = false
//	verbose   = true
//
// Unknown keys are rejected so that typos do not silently fall back to the
// built-in defaults.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/perm"
	"github.com/matzehuels/permgen/pkg/pipeline"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.toml"

// Config holds the values read from a configuration file. Zero values mean
// "not set"; callers keep their own defaults for those.
type Config struct {
	Algorithm string `toml:"algorithm"`
	Format    string `toml:"format"`
	Limit     int    `toml:"limit"`
	Sort      bool   `toml:"sort"`
	Verbose   bool   `toml:"verbose"`

	// Path is the file the values came from, empty for a zero Config.
	Path string `toml:"-"`
}

// Decode parses a configuration document from r and validates it.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and validates the configuration file at path. A missing file
// is a FILE_NOT_FOUND error; use [LoadOptional] for the default location.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// LoadOptional is like Load but returns a zero Config when the file does
// not exist.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Config{}, nil
	}
	return cfg, err
}

// Validate checks that every set value is one the CLI accepts.
func (c Config) Validate() error {
	if c.Algorithm != "" {
		if _, err := perm.ParseAlgorithm(c.Algorithm); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "algorithm")
		}
	}
	if c.Format != "" {
		if err := pipeline.ValidateFormat(c.Format); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "format")
		}
	}
	if c.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "limit must not be negative, got %d", c.Limit)
	}
	return nil
}

// AlgorithmOr returns the configured algorithm, or def when none is set.
func (c Config) AlgorithmOr(def perm.Algorithm) perm.Algorithm {
	if c.Algorithm == "" {
		return def
	}
	alg, err := perm.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return def
	}
	return alg
}

// FormatOr returns the configured format, or def when none is set.
func (c Config) FormatOr(def string) string {
	if c.Format == "" {
		return def
	}
	return c.Format
}
