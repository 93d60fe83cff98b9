package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. BLOCKPAINT_EDITOR_SIZE.
	EnvPrefix = "BLOCKPAINT"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "blockpaint.log"

	DefaultColor          = "white"
	DefaultSecondaryColor = "black"
	DefaultTool           = "brush"
	DefaultSize           = 1
	DefaultMaxSize        = 32
	DefaultColorMode      = "auto"
	DefaultTitle          = "BlockPaint (Untitled)"
	DefaultAudioVolume    = 0.5
	DefaultLogLevel       = "info"
)

// DefaultConfigDir returns the default blockpaint config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".config", "blockpaint")
	}
	return filepath.Join(home, ".config", "blockpaint")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultConfigFileName)
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultLogFileName)
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Editor: EditorConfig{
			Color:          DefaultColor,
			SecondaryColor: DefaultSecondaryColor,
			Tool:           DefaultTool,
			Size:           DefaultSize,
			MaxSize:        DefaultMaxSize,
		},
		Terminal: TerminalConfig{
			ColorMode: DefaultColorMode,
			Title:     DefaultTitle,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  DefaultAudioVolume,
		},
		Log: LogConfig{
			File:  DefaultLogPath(),
			Level: DefaultLogLevel,
		},
	}
}
