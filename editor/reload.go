package editor

import (
	"github.com/lixenwraith/blockpaint/config"
	"github.com/lixenwraith/blockpaint/render"
)

// applyConfig takes the settings that make sense mid-session from a reloaded config
// Colours, tool and size belong to the user once painting has started and are left alone
func (e *Editor) applyConfig(cfg config.Config) {
	if err := cfg.Validate(); err != nil {
		e.logger.Warn("ignoring invalid config", "err", err)
		return
	}

	e.state.MaxSize = cfg.Editor.MaxSize
	if e.state.Size > e.state.MaxSize {
		e.state.Size = e.state.MaxSize
	}

	e.sound.SetEnabled(cfg.Audio.Enabled)
	e.sound.SetVolume(cfg.Audio.Volume)

	if cfg.Terminal.Title != "" && cfg.Terminal.Title != e.title {
		e.title = cfg.Terminal.Title
		e.screen.SetTitle(e.title)
	}

	mode, err := render.ParseColorMode(cfg.Terminal.ColorMode)
	if err == nil && mode != e.screen.Mode() {
		e.screen.SetMode(mode)
		e.screen.Clear()
		e.canvas.Redraw()
		if e.palette.IsOpen() {
			e.palette.Relayout(e.screen, e.state.Left, e.state.Right)
			e.field.Draw(e.screen)
			e.screen.Flush()
		}
	}

	e.logger.Info("config reloaded",
		"max_size", e.state.MaxSize,
		"color_mode", e.screen.Mode().String(),
		"audio", cfg.Audio.Enabled,
	)
}
