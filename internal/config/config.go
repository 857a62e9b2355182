// Package config provides configuration loading for the trebuchet CLI.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Recognition modes.
const (
	ModeWords   = "words"
	ModeLiteral = "literal"
)

// Config is the CLI configuration.
type Config struct {
	Mode    string     `koanf:"mode"`
	Workers int        `koanf:"workers"`
	Metrics bool       `koanf:"metrics"`
	Log     LogConfig  `koanf:"log"`
	HTML    HTMLConfig `koanf:"html"`
	OCR     OCRConfig  `koanf:"ocr"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// HTMLConfig selects which block of an HTML page is read.
type HTMLConfig struct {
	// Example is the index among blocks inside <article> elements.
	Example int `koanf:"example"`

	// Block, when non-negative, is the index among all blocks and wins over Example.
	Block int `koanf:"block"`
}

// OCRConfig controls image inputs.
type OCRConfig struct {
	Language  string `koanf:"language"`
	MinHeight int    `koanf:"min_height"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Mode:    ModeWords,
		Workers: runtime.GOMAXPROCS(0),
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		HTML: HTMLConfig{
			Example: 0,
			Block:   -1,
		},
		OCR: OCRConfig{
			Language:  "eng",
			MinHeight: 300,
		},
	}
}

// Validate checks the configuration for values the CLI cannot use.
func (c *Config) Validate() error {
	var errs []error

	switch c.Mode {
	case ModeWords, ModeLiteral:
	default:
		errs = append(errs, fmt.Errorf("mode must be %q or %q, got %q", ModeWords, ModeLiteral, c.Mode))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	if c.HTML.Example < 0 {
		errs = append(errs, fmt.Errorf("html.example must not be negative, got %d", c.HTML.Example))
	}
	if c.OCR.Language == "" {
		errs = append(errs, errors.New("ocr.language is required"))
	}
	if c.OCR.MinHeight < 0 {
		errs = append(errs, fmt.Errorf("ocr.min_height must not be negative, got %d", c.OCR.MinHeight))
	}

	return errors.Join(errs...)
}
