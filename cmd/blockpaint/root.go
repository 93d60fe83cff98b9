package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/lixenwraith/blockpaint/audio"
	"github.com/lixenwraith/blockpaint/config"
	"github.com/lixenwraith/blockpaint/editor"
)

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *config.Loader) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "blockpaint",
		Short:         "Paint pixel art in the terminal with half-block cells",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, loader)
			if err != nil {
				return err
			}

			logger, closer, err := openLogger(cfg.Log)
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer func() {
				_ = closer.Close()
			}()
			ctx := pslog.ContextWithLogger(cmd.Context(), logger)
			logger.With("component", "blockpaint").Info("starting",
				"config", loader.ConfigFileUsed(),
				"color_mode", cfg.Terminal.ColorMode,
				"tool", cfg.Editor.Tool,
				"audio", cfg.Audio.Enabled,
			)
			return run(ctx, cfg, loader, func(next config.Config) config.Config {
				return applyFlags(cmd, next)
			})
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	flags := cmd.Flags()
	flags.String("color", config.DefaultColorMode, "color mode: auto, truecolor, 256")
	flags.String("log-file", config.DefaultLogPath(), "path to log file")
	flags.Bool("no-audio", false, "disable audio cues")

	cmd.AddCommand(NewConfigCommand(loader))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// loadConfig reads the config and layers explicitly set flags over it
func loadConfig(cmd *cobra.Command, loader *config.Loader) (config.Config, error) {
	cfg, err := loader.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg = applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags given on the command line
// Reloaded configs pass through here too so flags keep winning over the file
func applyFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Terminal.ColorMode, _ = flags.GetString("color")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("no-audio") {
		noAudio, _ := flags.GetBool("no-audio")
		cfg.Audio.Enabled = !noAudio
	}
	return cfg
}

// reloadHandler forwards reloaded configs to post with the flag overlay applied
func reloadHandler(logger pslog.Logger, overlay func(config.Config) config.Config, post func(config.Config) error) func(config.Config, error) {
	return func(next config.Config, err error) {
		if err != nil {
			logger.Warn("config reload failed", "err", err)
			return
		}
		if err := post(overlay(next)); err != nil {
			logger.Warn("config reload dropped", "err", err)
		}
	}
}

// run owns the terminal for the lifetime of the editor
func run(ctx context.Context, cfg config.Config, loader *config.Loader, overlay func(config.Config) config.Config) error {
	logger := pslog.Ctx(ctx)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			editor.HandleCrash(screen, logger, r)
		}
	}()

	player := audio.NewPlayer(cfg.Audio.Volume)
	player.SetEnabled(cfg.Audio.Enabled)
	if cfg.Audio.Enabled {
		if err := player.Initialize(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
	}
	defer player.Close()

	ed, err := editor.New(screen, editor.Options{
		Config:    cfg,
		Logger:    logger,
		Sound:     player,
		Clipboard: clipboard.WriteAll,
	})
	if err != nil {
		return err
	}

	if loader.Watch(reloadHandler(logger, overlay, ed.PostConfig)) {
		logger.Debug("watching config", "file", loader.ConfigFileUsed())
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ed.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
