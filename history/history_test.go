package history

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockpaint/canvas"
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/render"
	"github.com/lixenwraith/blockpaint/tool"
)

func newTestCanvas(t *testing.T, width, height int) *canvas.Canvas {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(width, height)
	t.Cleanup(sim.Fini)
	return canvas.New(render.NewScreen(sim, render.ColorModeTrueColor))
}

// snapshot captures every visible cell
func snapshot(cv *canvas.Canvas) []canvas.Cell {
	size := cv.Size()
	out := make([]canvas.Cell, 0, size.Area())
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			out = append(out, cv.Cell(geom.Point{X: x, Y: 2 * y}))
		}
	}
	return out
}

func equalSnapshots(a, b []canvas.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func pt(x, y int) *geom.Point {
	return &geom.Point{X: x, Y: y}
}

func sampleOps() []Operation {
	return []Operation{
		{Tool: tool.Brush, Start: geom.Point{X: 2, Y: 2}, Color: color.Red, Size: 1},
		{Tool: tool.Brush, Start: geom.Point{X: 6, Y: 3}, End: pt(2, 2), Color: color.Red, Size: 1},
		{Tool: tool.Rectangle, Start: geom.Point{X: 8, Y: 8}, Color: color.Blue, Size: 4},
		{Tool: tool.Quill, Start: geom.Point{X: 15, Y: 6}, Color: color.Green, Size: 3},
		{Tool: tool.Bucket, Start: geom.Point{X: 9, Y: 9}, Color: color.Yellow, Size: 1},
		{Tool: tool.Brush, Start: geom.Point{X: 12, Y: 12}, Color: color.RGB(1, 2, 3), Size: 3},
	}
}

func TestBrushUndoRedo(t *testing.T) {
	cv := newTestCanvas(t, 20, 10)
	b := NewBuffer()
	p := geom.Point{X: 5, Y: 6}

	op := Operation{Tool: tool.Brush, Start: p, Color: color.Red, Size: 1}
	if err := op.Apply(cv); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	b.Push(op)

	if got := cv.Cell(p).Upper; !got.Set || got.Color != color.Red {
		t.Fatalf("Expected upper half red, got %+v", got)
	}

	if !b.Undo(cv) {
		t.Fatal("Expected undo to succeed")
	}
	if !cv.Cell(p).Empty() {
		t.Errorf("Expected empty cell after undo, got %+v", cv.Cell(p))
	}

	if !b.Redo(cv) {
		t.Fatal("Expected redo to succeed")
	}
	if got := cv.Cell(p).Upper; !got.Set || got.Color != color.Red {
		t.Errorf("Expected upper half red after redo, got %+v", got)
	}
}

func TestBoundaries(t *testing.T) {
	cv := newTestCanvas(t, 10, 10)
	b := NewBuffer()

	if b.Undo(cv) {
		t.Error("Expected undo on empty buffer to fail")
	}
	if b.Redo(cv) {
		t.Error("Expected redo on empty buffer to fail")
	}

	b.Push(Operation{Tool: tool.Brush, Start: geom.Point{X: 1, Y: 1}, Color: color.Red, Size: 1})
	if b.Redo(cv) {
		t.Error("Expected redo at end to fail")
	}
	if !b.CanUndo() || b.CanRedo() {
		t.Errorf("Expected CanUndo true and CanRedo false, got %v/%v", b.CanUndo(), b.CanRedo())
	}
}

func TestUndoAllRedoAll(t *testing.T) {
	cv := newTestCanvas(t, 20, 10)
	b := NewBuffer()
	empty := snapshot(cv)

	for _, op := range sampleOps() {
		if err := op.Apply(cv); err != nil {
			t.Fatalf("Apply %s failed: %v", op, err)
		}
		b.Push(op)
	}
	final := snapshot(cv)
	n := b.Len()

	for i := 0; i < n; i++ {
		if !b.Undo(cv) {
			t.Fatalf("Undo %d failed", i)
		}
	}
	if b.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", b.Cursor())
	}
	if !equalSnapshots(snapshot(cv), empty) {
		t.Error("Expected empty canvas after undoing everything")
	}

	for i := 0; i < n; i++ {
		if !b.Redo(cv) {
			t.Fatalf("Redo %d failed", i)
		}
	}
	if b.Cursor() != n {
		t.Errorf("Expected cursor %d, got %d", n, b.Cursor())
	}
	if !equalSnapshots(snapshot(cv), final) {
		t.Error("Expected redo to restore the final state")
	}
}

func TestPushAfterUndoTruncates(t *testing.T) {
	cv := newTestCanvas(t, 20, 10)
	b := NewBuffer()
	for _, op := range sampleOps() {
		b.Push(op)
	}

	const k = 3
	for i := 0; i < k; i++ {
		b.Undo(cv)
	}
	b.Push(Operation{Tool: tool.Brush, Start: geom.Point{X: 0, Y: 0}, Color: color.White, Size: 1})

	want := len(sampleOps()) - k + 1
	if b.Len() != want {
		t.Errorf("Expected length %d, got %d", want, b.Len())
	}
	if b.Cursor() != want {
		t.Errorf("Expected cursor %d, got %d", want, b.Cursor())
	}
	if b.Redo(cv) {
		t.Error("Expected no redo after push")
	}
}

func TestReplayMatchesDirectApplication(t *testing.T) {
	direct := newTestCanvas(t, 20, 10)
	replayed := newTestCanvas(t, 20, 10)
	b := NewBuffer()

	for _, op := range sampleOps() {
		if err := op.Apply(direct); err != nil {
			t.Fatalf("Apply %s failed: %v", op, err)
		}
		b.Push(op)
	}
	if err := b.Replay(replayed); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}

	if !equalSnapshots(snapshot(direct), snapshot(replayed)) {
		t.Error("Expected replay to match direct application")
	}
}

func TestReplayJoinsRangeErrors(t *testing.T) {
	cv := newTestCanvas(t, 20, 10)
	b := NewBuffer()
	b.Push(Operation{Tool: tool.Brush, Start: geom.Point{X: 0, Y: 0}, Color: color.Red, Size: 2})
	b.Push(Operation{Tool: tool.Brush, Start: geom.Point{X: 4, Y: 4}, Color: color.Blue, Size: 1})

	err := b.Replay(cv)
	var re *canvas.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("Expected RangeError, got %v", err)
	}
	if cv.Color(geom.Point{X: 4, Y: 4}) != color.Blue {
		t.Error("Expected later operations to still be replayed")
	}

	b.Undo(cv)
	if b.Err() == nil {
		t.Error("Expected undo to record the replay error")
	}
}

func TestPushCopiesEndPoint(t *testing.T) {
	b := NewBuffer()
	end := geom.Point{X: 1, Y: 1}
	b.Push(Operation{Tool: tool.Brush, Start: geom.Point{X: 3, Y: 3}, End: &end, Color: color.Red, Size: 1})
	end.X = 9

	if got := b.Operations()[0].End; got.X != 1 {
		t.Errorf("Expected recorded end point unaffected, got %v", *got)
	}
}

func TestOperationsReturnsActivePrefix(t *testing.T) {
	cv := newTestCanvas(t, 20, 10)
	b := NewBuffer()
	for _, op := range sampleOps() {
		b.Push(op)
	}
	b.Undo(cv)

	ops := b.Operations()
	if len(ops) != len(sampleOps())-1 {
		t.Errorf("Expected %d operations, got %d", len(sampleOps())-1, len(ops))
	}
}
