package editor

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"pkt.systems/pslog"
)

// HandleCrash restores the terminal, logs the panic and prints the stack trace, then exits
// Call it from a deferred recover around the loop
func HandleCrash(screen tcell.Screen, logger pslog.Logger, r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before anything is printed
	if screen != nil {
		screen.Fini()
	}

	stack := debug.Stack()
	if logger != nil {
		logger.Error("crash", "panic", fmt.Sprint(r), "stack", string(stack))
	}

	os.Stdout.Sync()
	writeCrashReport(os.Stderr, r, stack)
	os.Stderr.Sync()

	os.Exit(1)
}

func writeCrashReport(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}
