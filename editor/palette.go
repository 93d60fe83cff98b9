package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockpaint/audio"
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/widget"
)

// runPalette shows the palette and handles input until Tab closes it
// Returns false when the user quit from inside the palette
func (e *Editor) runPalette() bool {
	e.openPalette()
	defer e.closePalette()

	for {
		ev := e.tscreen.PollEvent()
		if ev == nil {
			return false
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				return false
			}
			if ev.Key() == tcell.KeyTab {
				return true
			}
			e.paletteKey(ev)
		case *tcell.EventMouse:
			e.paletteMouse(ev)
		case *tcell.EventResize:
			e.resize()
		case *tcell.EventInterrupt:
			if !e.handleInterrupt(ev) {
				return false
			}
		}
	}
}

func (e *Editor) openPalette() {
	e.clearStatus()
	e.state.Last = nil
	e.buttons = 0
	e.palette.Open(e.screen, e.state.Left, e.state.Right)
	e.field.Move(e.palette.FieldOrigin())
	e.field.Clear()
	e.field.Draw(e.screen)
	e.screen.Flush()
	e.logger.Debug("palette opened")
}

func (e *Editor) closePalette() {
	e.palette.Close()
	e.buttons = 0
	e.screen.HideCursor()
	e.screen.Clear()
	e.canvas.Redraw()
	e.logger.Debug("palette closed", "left", e.state.Left.String(), "right", e.state.Right.String())
}

// paletteKey edits the colour field; a parsable value becomes the left colour
func (e *Editor) paletteKey(ev *tcell.EventKey) {
	handled, edited := e.field.HandleKey(ev)
	if !handled {
		return
	}
	if edited {
		if c, ok := e.field.Color(); ok {
			e.state.Left = c
			e.palette.DrawFrame(e.screen, c)
			e.palette.DrawSlot(e.screen, widget.SlotLeft, c)
		}
	}
	e.field.Draw(e.screen)
	e.screen.Flush()
}

// paletteMouse previews the hovered swatch and assigns it to a slot on release
func (e *Editor) paletteMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pt := geom.Point{X: x, Y: y}
	raw := ev.Buttons()
	if raw&(tcell.WheelUp|tcell.WheelDown) != 0 {
		return
	}

	prev := e.buttons
	held := raw & buttonMask
	e.buttons = held
	released := prev &^ held
	hovered, onSwatch := e.palette.ColorAt(pt)

	switch {
	case released&tcell.Button1 != 0:
		e.releaseOnPalette(widget.SlotLeft, hovered, onSwatch)
	case released&tcell.Button2 != 0:
		e.releaseOnPalette(widget.SlotRight, hovered, onSwatch)
	case held&tcell.Button1 != 0 && onSwatch:
		e.palette.DrawSlot(e.screen, widget.SlotLeft, hovered)
	case held&tcell.Button2 != 0 && onSwatch:
		e.palette.DrawSlot(e.screen, widget.SlotRight, hovered)
	case held == 0 && onSwatch:
		e.palette.DrawFrame(e.screen, hovered)
	case held == 0:
		e.palette.DrawFrame(e.screen, e.state.Left)
	}
	e.field.Draw(e.screen)
	e.screen.Flush()
}

func (e *Editor) releaseOnPalette(slot widget.Slot, c color.Color, onSwatch bool) {
	if !onSwatch {
		// Dragged off the swatches: drop the preview
		e.palette.DrawSlot(e.screen, slot, e.slotColor(slot))
		return
	}
	if slot == widget.SlotLeft {
		e.state.Left = c
	} else {
		e.state.Right = c
	}
	e.palette.DrawSlot(e.screen, slot, c)
	e.palette.DrawFrame(e.screen, e.state.Left)
	e.field.Clear()
	e.logger.Debug("palette colour selected", "slot", slot.String(), "color", c.String())
	e.play(audio.CueSelect)
}

func (e *Editor) slotColor(slot widget.Slot) color.Color {
	if slot == widget.SlotLeft {
		return e.state.Left
	}
	return e.state.Right
}
