// Command guikit-demo opens a window with a docked control panel built from
// guikit elements and a log panel that records every change they report.
package main

import (
	"fmt"
	"os"
	"runtime"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
