package editor

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockpaint/audio"
	"github.com/lixenwraith/blockpaint/canvas"
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/history"
	"github.com/lixenwraith/blockpaint/tool"
	"github.com/lixenwraith/blockpaint/widget"
)

const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// gridPoint maps a terminal cell to the upper half-block it shows
func gridPoint(term geom.Point) geom.Point {
	return geom.Point{X: term.X, Y: term.Y * 2}
}

func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	term := geom.Point{X: x, Y: y}
	raw := ev.Buttons()

	switch {
	case raw&tcell.WheelUp != 0:
		e.setSize(e.state.Size + 1)
		return
	case raw&tcell.WheelDown != 0:
		e.setSize(e.state.Size - 1)
		return
	}

	prev := e.buttons
	held := raw & buttonMask
	e.buttons = held

	switch {
	case held&tcell.Button3 != 0 && prev&tcell.Button3 == 0:
		e.state.Last = nil
		e.pick(term, held)
	case held&tcell.Button1 != 0:
		e.paint(term, e.state.Left)
	case held&tcell.Button2 != 0:
		e.paint(term, e.state.Right)
	default:
		e.state.Last = nil
	}
}

// paint applies the current tool at the pointer and records the operation
func (e *Editor) paint(term geom.Point, c color.Color) {
	e.clearStatus()
	p := gridPoint(term)
	if !e.canvas.Contains(p) {
		e.state.Last = nil
		return
	}

	filled := e.state.Tool == tool.Bucket && e.canvas.Color(p) != c
	op := history.Operation{
		Tool:  e.state.Tool,
		Start: p,
		End:   e.state.Last,
		Color: c,
		Size:  e.state.Size,
	}
	if err := op.Apply(e.canvas); err != nil {
		e.logStrokeError(op, err)
	}
	e.history.Push(op)
	e.screen.Flush()

	e.state.Last = &p
	if filled {
		e.play(audio.CueFill)
	}
}

func (e *Editor) logStrokeError(op history.Operation, err error) {
	var re *canvas.RangeError
	if errors.As(err, &re) {
		e.logger.Warn("stroke left the canvas", "op", op.String(), "point", re.Point.String())
		return
	}
	e.logger.Warn("stroke failed", "op", op.String(), "err", err)
}

// setSize changes the tool size within 1..MaxSize
func (e *Editor) setSize(size int) {
	size = max(1, min(size, e.state.MaxSize))
	if size == e.state.Size {
		e.play(audio.CueBoundary)
		return
	}
	e.state.Size = size
	e.logger.Debug("tool size changed", "size", size)
	if !e.palette.IsOpen() {
		e.showStatus("%s size %d", e.state.Tool, size)
	}
}

// pick samples colours from the canvas until a button is released
// Releasing left or right assigns that slot, releasing middle copies the colour text
func (e *Editor) pick(start geom.Point, held tcell.ButtonMask) {
	e.clearStatus()
	pos := start
	c := e.picker.Indicate(pos)

	// Events that belong to the main loop are replayed after the pick ends
	var deferred []tcell.Event
	defer func() {
		for _, ev := range deferred {
			_ = e.tscreen.PostEvent(ev)
		}
	}()

	for {
		ev := e.tscreen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventMouse:
			x, y := ev.Position()
			pos = geom.Point{X: x, Y: y}
			now := ev.Buttons() & buttonMask
			released := held &^ now
			held = now
			e.buttons = now
			if released == 0 {
				c = e.picker.Indicate(pos)
				continue
			}
			e.picker.Finish(pos)
			e.assignPicked(released, c)
			return
		case *tcell.EventKey, *tcell.EventResize, *tcell.EventInterrupt:
			deferred = append(deferred, ev)
		}
	}
}

func (e *Editor) assignPicked(released tcell.ButtonMask, c color.Color) {
	switch {
	case released&tcell.Button1 != 0:
		e.state.Left = c
		e.logger.Debug("picked colour", "slot", widget.SlotLeft.String(), "color", c.String())
	case released&tcell.Button2 != 0:
		e.state.Right = c
		e.logger.Debug("picked colour", "slot", widget.SlotRight.String(), "color", c.String())
	default:
		e.copyColor(c)
	}
	e.play(audio.CuePick)
}

func (e *Editor) copyColor(c color.Color) {
	if e.clipboard == nil {
		return
	}
	if err := e.clipboard(c.String()); err != nil {
		e.logger.Warn("copy colour to clipboard", "color", c.String(), "err", err)
		return
	}
	e.showStatus("copied %s", c)
}
