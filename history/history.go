// Package history records painting operations and restores earlier canvas
// states by replaying them.
package history

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/blockpaint/canvas"
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/tool"
)

// Operation is one recorded tool application
// End is the previous sample of the same drag, nil for the first sample
type Operation struct {
	Tool  tool.Tool
	Start geom.Point
	End   *geom.Point
	Color color.Color
	Size  int
}

// Apply draws the operation onto cv
func (op Operation) Apply(cv *canvas.Canvas) error {
	return op.Tool.Draw(cv, op.Start, op.End, op.Color, op.Size)
}

func (op Operation) String() string {
	if op.End != nil {
		return fmt.Sprintf("%s %v->%v %s size %d", op.Tool, *op.End, op.Start, op.Color, op.Size)
	}
	return fmt.Sprintf("%s %v %s size %d", op.Tool, op.Start, op.Color, op.Size)
}

// Buffer is an undo/redo log
// Operations before the cursor are applied; those after it can be redone until the next Push
type Buffer struct {
	ops    []Operation
	cursor int
	err    error
}

// NewBuffer returns an empty log
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Push records op, discarding any undone operations
func (b *Buffer) Push(op Operation) {
	if op.End != nil {
		end := *op.End
		op.End = &end
	}
	b.ops = append(b.ops[:b.cursor], op)
	b.cursor++
}

// Undo steps back one operation and rebuilds cv
// Returns false when there is nothing to undo
func (b *Buffer) Undo(cv *canvas.Canvas) bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	b.err = b.Replay(cv)
	return true
}

// Redo reapplies the next undone operation by rebuilding cv
// Returns false when there is nothing to redo
func (b *Buffer) Redo(cv *canvas.Canvas) bool {
	if b.cursor == len(b.ops) {
		return false
	}
	b.cursor++
	b.err = b.Replay(cv)
	return true
}

// Replay clears cv and applies every operation before the cursor
// Failing operations are skipped; their errors are joined
func (b *Buffer) Replay(cv *canvas.Canvas) error {
	cv.Clear()
	var errs []error
	for i, op := range b.ops[:b.cursor] {
		if err := op.Apply(cv); err != nil {
			errs = append(errs, fmt.Errorf("operation %d (%s): %w", i, op, err))
		}
	}
	cv.Surface().Flush()
	return errors.Join(errs...)
}

// Err returns the replay error of the last Undo or Redo
func (b *Buffer) Err() error {
	return b.err
}

// Len returns the number of recorded operations, including undone ones
func (b *Buffer) Len() int {
	return len(b.ops)
}

// Cursor returns the number of applied operations
func (b *Buffer) Cursor() int {
	return b.cursor
}

func (b *Buffer) CanUndo() bool {
	return b.cursor > 0
}

func (b *Buffer) CanRedo() bool {
	return b.cursor < len(b.ops)
}

// Operations returns a copy of the applied operations
func (b *Buffer) Operations() []Operation {
	out := make([]Operation, b.cursor)
	copy(out, b.ops[:b.cursor])
	return out
}
