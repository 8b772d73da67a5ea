package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// terminalFile returns in as a file when it is an interactive terminal, and
// nil otherwise.
func terminalFile(in io.Reader) *os.File {
	f, ok := in.(*os.File)
	if !ok || f == nil {
		return nil
	}
	fd := f.Fd()
	if fd > uintptr(int(^uint(0)>>1)) {
		return nil
	}
	if !term.IsTerminal(int(fd)) { // #nosec G115 -- bounds checked above
		return nil
	}
	return f
}
