package utils

import (
	"bytes"
	"runtime/debug"
)

// Stack returns the goroutine stack trace with the first skip frames dropped.
// Each frame is two lines (function, file:line) below the goroutine header.
func Stack(skip int) []byte {
	lines := bytes.Split(debug.Stack(), []byte("\n"))
	if len(lines) == 0 {
		return nil
	}
	header, frames := lines[0], lines[1:]
	drop := skip * 2
	if drop > len(frames) {
		drop = len(frames)
	}
	return bytes.Join(append([][]byte{header}, frames[drop:]...), []byte("\n"))
}
