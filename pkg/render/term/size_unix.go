//go:build unix

package term

import "golang.org/x/sys/unix"

// terminalSize returns the window size of the terminal open on fd.
func terminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
