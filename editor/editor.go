// Package editor runs the interactive loop that routes terminal input to the
// painting tools, the palette and the colour picker.
//
// The editor is single threaded: every canvas mutation happens on the goroutine
// that called Run, between two PollEvent calls. Other goroutines talk to it only
// by posting tcell interrupt events.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"pkt.systems/pslog"

	"github.com/lixenwraith/blockpaint/audio"
	"github.com/lixenwraith/blockpaint/canvas"
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/config"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/history"
	"github.com/lixenwraith/blockpaint/render"
	"github.com/lixenwraith/blockpaint/tool"
	"github.com/lixenwraith/blockpaint/widget"
)

// ErrSaveUnsupported is reported when the user asks to save the drawing
var ErrSaveUnsupported = errors.New("saving is not supported")

// State is the painting state owned by the loop
type State struct {
	Left    color.Color
	Right   color.Color
	Tool    tool.Tool
	Size    int
	MaxSize int
	// Last is the previous sample of the current drag, nil between strokes
	Last *geom.Point
}

// Sound plays feedback cues
type Sound interface {
	Play(audio.Cue)
	SetEnabled(bool)
	SetVolume(float64)
}

type noSound struct{}

func (noSound) Play(audio.Cue)    {}
func (noSound) SetEnabled(bool)   {}
func (noSound) SetVolume(float64) {}

// Options configures an Editor
type Options struct {
	Config config.Config
	Logger pslog.Logger
	// Sound is optional; nil plays nothing
	Sound Sound
	// Clipboard receives the text of colours picked with the middle button; nil disables copying
	Clipboard func(string) error
}

// stopEvent asks the loop to return
type stopEvent struct{}

// Editor owns the canvas, its history and the widgets drawn over it
type Editor struct {
	tscreen tcell.Screen
	screen  *render.Screen
	canvas  *canvas.Canvas
	history *history.Buffer
	palette *widget.Palette
	field   *widget.Field
	picker  *widget.Picker

	state     State
	buttons   tcell.ButtonMask
	status    bool
	title     string
	logger    pslog.Logger
	sound     Sound
	clipboard func(string) error
}

// New builds an editor on an initialised screen
func New(screen tcell.Screen, opts Options) (*Editor, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("editor config: %w", err)
	}
	left, right, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	t, err := cfg.Tool()
	if err != nil {
		return nil, err
	}
	mode, err := render.ParseColorMode(cfg.Terminal.ColorMode)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured})
	}
	var sound Sound = noSound{}
	if opts.Sound != nil {
		sound = opts.Sound
	}
	title := cfg.Terminal.Title
	if title == "" {
		title = widget.Title
	}

	rs := render.NewScreen(screen, mode)
	cv := canvas.New(rs)
	e := &Editor{
		tscreen: screen,
		screen:  rs,
		canvas:  cv,
		history: history.NewBuffer(),
		palette: widget.NewPalette(),
		field:   widget.NewField(geom.Point{}),
		picker:  widget.NewPicker(cv, rs),
		state: State{
			Left:    left,
			Right:   right,
			Tool:    t,
			Size:    cfg.Editor.Size,
			MaxSize: cfg.Editor.MaxSize,
		},
		title:     title,
		logger:    logger.With("component", "editor"),
		sound:     sound,
		clipboard: opts.Clipboard,
	}
	return e, nil
}

// State returns a copy of the painting state
func (e *Editor) State() State {
	return e.state
}

// Canvas exposes the drawing
func (e *Editor) Canvas() *canvas.Canvas {
	return e.canvas
}

// History exposes the undo log
func (e *Editor) History() *history.Buffer {
	return e.history
}

// Start sets the title and prints the instructions on a blank screen
func (e *Editor) Start() {
	e.tscreen.EnableMouse()
	e.screen.SetTitle(e.title)
	e.screen.Clear()
	widget.DrawInstructions(e.canvas)
	e.screen.Flush()
	e.logger.Info("editor started",
		"size", e.canvas.Size().String(),
		"color_mode", e.screen.Mode().String(),
		"tool", e.state.Tool.String(),
	)
}

// Run processes events until the user quits, the screen is finalised or ctx is done
func (e *Editor) Run(ctx context.Context) error {
	e.Start()
	stop := context.AfterFunc(ctx, func() {
		_ = e.tscreen.PostEvent(tcell.NewEventInterrupt(stopEvent{}))
	})
	defer stop()

	for {
		ev := e.tscreen.PollEvent()
		if ev == nil {
			return nil
		}
		if !e.HandleEvent(ev) {
			break
		}
	}
	e.logger.Info("editor stopped", "operations", e.history.Len())
	return ctx.Err()
}

// PostConfig hands a reloaded configuration to the loop
// Safe to call from any goroutine
func (e *Editor) PostConfig(cfg config.Config) error {
	return e.tscreen.PostEvent(tcell.NewEventInterrupt(cfg))
}

// HandleEvent dispatches one event and reports whether the loop should continue
func (e *Editor) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		e.resize()
	case *tcell.EventMouse:
		e.handleMouse(ev)
	case *tcell.EventKey:
		return e.handleKey(ev)
	case *tcell.EventInterrupt:
		return e.handleInterrupt(ev)
	}
	return true
}

func (e *Editor) handleInterrupt(ev *tcell.EventInterrupt) bool {
	switch data := ev.Data().(type) {
	case stopEvent:
		return false
	case config.Config:
		e.applyConfig(data)
	}
	return true
}

// resize clears the screen and redraws the canvas at the new terminal size
func (e *Editor) resize() {
	e.tscreen.Sync()
	size := e.screen.Size()
	e.canvas.ResizeTerminal(size)
	e.status = false
	e.screen.Clear()
	e.canvas.Redraw()
	if e.palette.IsOpen() {
		e.palette.Relayout(e.screen, e.state.Left, e.state.Right)
		e.field.Move(e.palette.FieldOrigin())
		e.field.Draw(e.screen)
		e.screen.Flush()
	}
	e.logger.Debug("terminal resized", "size", size.String())
}

// showStatus writes a message on the bottom row until the next stroke
func (e *Editor) showStatus(format string, args ...any) {
	widget.DrawStatus(e.screen, format, args...)
	e.status = true
	e.screen.Flush()
}

// clearStatus restores the canvas row under the status line
func (e *Editor) clearStatus() {
	if !e.status {
		return
	}
	e.status = false
	size := e.canvas.Size()
	if size.Height == 0 {
		return
	}
	y := size.Height - 1
	e.screen.ClearLine(0, y)
	for x := 0; x < size.Width; x++ {
		if cell := e.canvas.Cell(geom.Point{X: x, Y: 2 * y}); !cell.Empty() {
			e.canvas.RedrawCell(cell)
		}
	}
}

func (e *Editor) play(c audio.Cue) {
	e.sound.Play(c)
}
