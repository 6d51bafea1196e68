//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/OpalAayan/wavecli/constant"
)

// Size returns the current terminal geometry in rows and columns.
// When stdout is not a terminal, the ioctl fails, or either dimension is
// degenerate, the fixed fallback geometry is returned instead.
func Size() (rows, cols int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return constant.FallbackRows, constant.FallbackCols
	}
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Row == 0 || ws.Col == 0 {
		return constant.FallbackRows, constant.FallbackCols
	}
	return int(ws.Row), int(ws.Col)
}
