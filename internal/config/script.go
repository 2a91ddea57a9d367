package config

// ScriptConfig holds settings for replaying move scripts.
type ScriptConfig struct {
	// StopOnError aborts the script at the first rejected command
	StopOnError bool

	// EchoCommands writes each command before running it
	EchoCommands bool

	// Workers is the number of scripts played at once, each in its own game
	Workers int
}

// NewScriptConfig creates a ScriptConfig with default values.
func NewScriptConfig() *ScriptConfig {
	return &ScriptConfig{
		StopOnError: true,
		Workers:     1,
	}
}
