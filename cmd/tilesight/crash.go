package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilesight/logger"
)

// handleCrash restores the terminal and prints the panic with its stack
// trace. Call it deferred with the result of recover().
func handleCrash(screen tcell.Screen, r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()
	if screen != nil {
		screen.Fini()
	}
	logger.Log.WithField("panic", fmt.Sprint(r)).Error("crashed")

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTILESIGHT CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	os.Exit(1)
}
