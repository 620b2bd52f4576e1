// Package config loads interpreter settings with Viper: terminal behavior,
// prompt appearance and log level. Values come from defaults, an optional
// config file and SMASH_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configurable settings for the interpreter.
type Config struct {
	Terminal Terminal `mapstructure:"terminal"` // Terminal-related settings
	Prompt   Prompt   `mapstructure:"prompt"`   // Prompt appearance settings
	Log      Log      `mapstructure:"log"`      // Diagnostic logging
}

// Terminal defines settings related to terminal behavior.
type Terminal struct {
	HistoryFile     string `mapstructure:"history_file"`     // Path to history file, empty disables history
	HistoryLimit    int    `mapstructure:"history_limit"`    // Maximum number of history entries
	InterruptPrompt string `mapstructure:"interrupt_prompt"` // Text shown on Ctrl-C
	EOFPrompt       string `mapstructure:"exit_message"`     // Text shown on EOF
}

// Prompt defines the prompt text and its styling.
type Prompt struct {
	Text       string `mapstructure:"text"`        // Prompt text
	Theme      string `mapstructure:"theme"`       // Prompt theme name
	Colour     string `mapstructure:"colour"`      // Colour name or escape sequence
	ColourBold bool   `mapstructure:"colour_bold"` // Bold style for the prompt
}

// Log defines diagnostic logging settings.
type Log struct {
	Level string `mapstructure:"level"` // debug, info, warn or error
}

// Default returns a Config with the built-in settings.
func Default() *Config {

	cfg := new(Config)

	if home, err := os.UserHomeDir(); err == nil {
		cfg.Terminal.HistoryFile = filepath.Join(home, ".smash_history")
	}
	cfg.Terminal.HistoryLimit = 1000
	cfg.Terminal.InterruptPrompt = "^C"
	cfg.Terminal.EOFPrompt = "quit"

	cfg.Prompt.Text = "user@smash $ "
	cfg.Prompt.Theme = "none"

	cfg.Log.Level = "warn"

	return cfg
}

// New returns a Viper instance preloaded with the defaults and environment
// bindings. Flags may be bound to it before calling Load.
func New() *viper.Viper {

	v := viper.New()

	def := Default()
	v.SetDefault("terminal.history_file", def.Terminal.HistoryFile)
	v.SetDefault("terminal.history_limit", def.Terminal.HistoryLimit)
	v.SetDefault("terminal.interrupt_prompt", def.Terminal.InterruptPrompt)
	v.SetDefault("terminal.exit_message", def.Terminal.EOFPrompt)
	v.SetDefault("prompt.text", def.Prompt.Text)
	v.SetDefault("prompt.theme", def.Prompt.Theme)
	v.SetDefault("prompt.colour", def.Prompt.Colour)
	v.SetDefault("prompt.colour_bold", def.Prompt.ColourBold)
	v.SetDefault("log.level", def.Log.Level)

	v.SetEnvPrefix("smash")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v

}

// Load reads the config file at path, or when path is empty searches for a
// file named "smash" in the current directory and $HOME/.config/smash.
// A missing file is only an error when path was given explicitly. On failure the defaults (with
// environment overrides) are returned along with the error.
func Load(v *viper.Viper, path string) (*Config, error) {

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("smash")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "smash"))
		}
	}

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			readErr = fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, readErr
}
