// Package config holds the disassembler settings that can be given in a TOML
// file and overridden on the command line.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrInvalid is returned for settings that fail validation.
var ErrInvalid = errors.New("invalid configuration")

// Output formats.
const (
	FormatListing = "listing"
	FormatModes   = "modes"
)

// Config for a disassembly run.
type Config struct {
	// Output is the listing file, truncated on every run.
	Output string `toml:"output"`
	// ColumnWidth is the width of each listing column.
	ColumnWidth int `toml:"column_width"`
	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`
	// Format is FormatListing or FormatModes.
	Format string `toml:"format"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	return &Config{
		Output:      "out.lst",
		ColumnWidth: 12,
		LogLevel:    "warn",
		Format:      FormatListing,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	for _, key := range md.Undecoded() {
		logrus.Warnf("config %s: unknown key %q", path, key.String())
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.Wrap(ErrInvalid, "output must not be empty")
	}
	if c.ColumnWidth <= 0 {
		return errors.Wrapf(ErrInvalid, "column_width %d must be positive", c.ColumnWidth)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level: %v", err)
	}
	switch c.Format {
	case FormatListing, FormatModes:
	default:
		return errors.Wrapf(ErrInvalid, "format %q must be %q or %q", c.Format, FormatListing, FormatModes)
	}
	return nil
}
