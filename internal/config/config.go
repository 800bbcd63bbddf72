// Package config provides configuration for the chess engine and its CLI.
package config

import (
	"fmt"
	"io"
	"os"
)

// Verbosity levels.
const (
	Silent = 0 // nothing but results
	Normal = 1 // progress and summaries
	Trace  = 2 // search trace
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summaries, 2=search trace

	// Grouped settings
	Search *SearchConfig
	Rules  *RulesConfig
	Output *OutputConfig
	Play   *PlayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Search:     NewSearchConfig(),
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		Play:       NewPlayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		fmt.Fprintln(c.LogFile)
	}
}

// Validate checks every group of settings.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Play.Validate()
}
