package main

import (
	"fmt"

	"github.com/dmitrymomot/validaten/pkg/logger"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// Config is read from the environment (and an optional .env file).
type Config struct {
	LogLevel  string `env:"VALIDATEN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VALIDATEN_LOG_FORMAT" envDefault:"text"`
	Output    string `env:"VALIDATEN_OUTPUT" envDefault:"text"`
	MaskCards bool   `env:"VALIDATEN_MASK_CARDS" envDefault:"true"`
	Lang      string `env:"VALIDATEN_LANG" envDefault:"en"`
}

func (c Config) validate() error {
	if c.Output != outputText && c.Output != outputJSON {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	if f := logger.Format(c.LogFormat); f != logger.FormatText && f != logger.FormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
