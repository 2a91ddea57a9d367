// Package config provides configuration for chess games and the game driver.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet      = 0 // nothing
	Summary    = 1 // final board and capture summary
	Commentary = 2 // every pick, placement and rejection
)

// Config holds all program configuration.
type Config struct {
	// Verbosity is 0=nothing, 1=summary, 2=running commentary.
	Verbosity int

	// StartSide is the side to move when a game starts.
	StartSide chess.Side

	// StartFEN, if set, replaces the standard starting arrangement.
	StartFEN string

	Render *RenderConfig
	Script *ScriptConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		StartSide:  chess.White,
		Render:     NewRenderConfig(),
		Script:     NewScriptConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Clone returns a copy whose sub-configs can be changed independently.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Render != nil {
		render := *c.Render
		clone.Render = &render
	}
	if c.Script != nil {
		script := *c.Script
		clone.Script = &script
	}
	return &clone
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a log line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d outside %d..%d: %w", c.Verbosity, Quiet, Commentary, errors.ErrInvalidConfig)
	}
	if c.StartSide != chess.White && c.StartSide != chess.Black {
		return fmt.Errorf("start side %d: %w", c.StartSide, errors.ErrInvalidConfig)
	}
	if c.Render != nil {
		if err := c.Render.Validate(); err != nil {
			return err
		}
	}
	if c.Script != nil && c.Script.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Script.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
