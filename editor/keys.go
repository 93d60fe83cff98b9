package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockpaint/audio"
	"github.com/lixenwraith/blockpaint/tool"
)

// isQuit reports the keys that leave the editor from any mode
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

func (e *Editor) handleKey(ev *tcell.EventKey) bool {
	if isQuit(ev) {
		return false
	}

	switch ev.Key() {
	case tcell.KeyTab:
		return e.runPalette()
	case tcell.KeyCtrlS:
		e.logger.Info("save requested", "err", ErrSaveUnsupported)
		e.showStatus("save: %v", ErrSaveUnsupported)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); r {
	case 'z', 'Z':
		e.undo()
	case 'y', 'Y':
		e.redo()
	default:
		if t, ok := tool.FromKey(r); ok {
			e.selectTool(t)
		}
	}
	return true
}

func (e *Editor) selectTool(t tool.Tool) {
	e.state.Tool = t
	e.state.Last = nil
	e.logger.Debug("tool selected", "tool", t.String())
	e.showStatus("%s size %d", t, e.state.Size)
}

func (e *Editor) undo() {
	e.state.Last = nil
	if !e.history.Undo(e.canvas) {
		e.play(audio.CueBoundary)
		return
	}
	e.status = false
	if err := e.history.Err(); err != nil {
		e.logger.Warn("undo replay", "err", err)
	}
}

func (e *Editor) redo() {
	e.state.Last = nil
	if !e.history.Redo(e.canvas) {
		e.play(audio.CueBoundary)
		return
	}
	e.status = false
	if err := e.history.Err(); err != nil {
		e.logger.Warn("redo replay", "err", err)
	}
}
