package config

import (
	"io"

	"github.com/lgbarn/chess-game-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartSide sets the side to move first.
func (b *ConfigBuilder) WithStartSide(side chess.Side) *ConfigBuilder {
	b.cfg.StartSide = side
	return b
}

// WithStartFEN sets a custom starting arrangement.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithGlyphs sets the piece glyph set.
func (b *ConfigBuilder) WithGlyphs(g chess.Glyphs) *ConfigBuilder {
	b.cfg.Render.Glyphs = g
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Render.JSONFormat = enabled
	return b
}

// WithStopOnError controls whether a script stops at its first failure.
func (b *ConfigBuilder) WithStopOnError(stop bool) *ConfigBuilder {
	b.cfg.Script.StopOnError = stop
	return b
}

// WithEcho controls whether script commands are echoed.
func (b *ConfigBuilder) WithEcho(echo bool) *ConfigBuilder {
	b.cfg.Script.EchoCommands = echo
	return b
}

// WithWorkers sets how many scripts are played at once.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Script.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
