// Package config loads editor settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/tool"
)

// Config is the root configuration for blockpaint.
type Config struct {
	Editor   EditorConfig   `mapstructure:"editor" yaml:"editor"`
	Terminal TerminalConfig `mapstructure:"terminal" yaml:"terminal"`
	Audio    AudioConfig    `mapstructure:"audio" yaml:"audio"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// EditorConfig sets the initial painting state.
type EditorConfig struct {
	Color          string `mapstructure:"color" yaml:"color"`
	SecondaryColor string `mapstructure:"secondary_color" yaml:"secondary_color"`
	Tool           string `mapstructure:"tool" yaml:"tool"`
	Size           int    `mapstructure:"size" yaml:"size"`
	MaxSize        int    `mapstructure:"max_size" yaml:"max_size"`
}

// TerminalConfig configures the screen.
type TerminalConfig struct {
	ColorMode string `mapstructure:"color_mode" yaml:"color_mode"`
	Title     string `mapstructure:"title" yaml:"title"`
}

// AudioConfig configures feedback cues.
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled" yaml:"enabled"`
	Volume  float64 `mapstructure:"volume" yaml:"volume"`
}

// LogConfig configures the log file.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Loader wraps Viper configuration loading for blockpaint.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard search paths and defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/blockpaint")

	setDefaults(v, DefaultConfig())
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("editor.color", cfg.Editor.Color)
	v.SetDefault("editor.secondary_color", cfg.Editor.SecondaryColor)
	v.SetDefault("editor.tool", cfg.Editor.Tool)
	v.SetDefault("editor.size", cfg.Editor.Size)
	v.SetDefault("editor.max_size", cfg.Editor.MaxSize)
	v.SetDefault("terminal.color_mode", cfg.Terminal.ColorMode)
	v.SetDefault("terminal.title", cfg.Terminal.Title)
	v.SetDefault("audio.enabled", cfg.Audio.Enabled)
	v.SetDefault("audio.volume", cfg.Audio.Volume)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)
}

// Viper exposes the underlying Viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ConfigFileUsed returns the file the configuration was read from, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration and unmarshals it into a validated Config.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Watch calls fn with the reloaded configuration whenever the config file changes.
// fn runs on viper's watcher goroutine. Returns false when no file was loaded to watch.
func (l *Loader) Watch(fn func(Config, error)) bool {
	if l.v.ConfigFileUsed() == "" {
		return false
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.unmarshal()
		if err != nil {
			err = fmt.Errorf("reload %s: %w", e.Name, err)
		}
		fn(cfg, err)
	})
	l.v.WatchConfig()
	return true
}

// Validate checks every value can be resolved.
func (c Config) Validate() error {
	var errs []error
	if _, err := parseColor("editor.color", c.Editor.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseColor("editor.secondary_color", c.Editor.SecondaryColor); err != nil {
		errs = append(errs, err)
	}
	if _, err := tool.Parse(c.Editor.Tool); err != nil {
		errs = append(errs, fmt.Errorf("editor.tool: %w", err))
	}
	if c.Editor.MaxSize < 1 || c.Editor.MaxSize > geom.MaxCoord {
		errs = append(errs, fmt.Errorf("editor.max_size must be in range 1 to %d, got %d", geom.MaxCoord, c.Editor.MaxSize))
	}
	if c.Editor.Size < 1 || c.Editor.Size > c.Editor.MaxSize {
		errs = append(errs, fmt.Errorf("editor.size must be in range 1 to editor.max_size, got %d", c.Editor.Size))
	}
	switch strings.ToLower(c.Terminal.ColorMode) {
	case "", "auto", "truecolor", "24bit", "256":
	default:
		errs = append(errs, fmt.Errorf("terminal.color_mode: unknown mode %q", c.Terminal.ColorMode))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in range 0 to 1, got %v", c.Audio.Volume))
	}
	return errors.Join(errs...)
}

// Colors resolves the primary and secondary colours.
func (c Config) Colors() (left, right color.Color, err error) {
	if left, err = parseColor("editor.color", c.Editor.Color); err != nil {
		return
	}
	right, err = parseColor("editor.secondary_color", c.Editor.SecondaryColor)
	return
}

// Tool resolves the initial tool.
func (c Config) Tool() (tool.Tool, error) {
	return tool.Parse(c.Editor.Tool)
}

// YAML renders the configuration as a config file.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func parseColor(key, s string) (color.Color, error) {
	c, ok := color.Lookup(s)
	if !ok {
		return color.Color{}, fmt.Errorf("%s: cannot parse colour %q", key, s)
	}
	return c, nil
}
