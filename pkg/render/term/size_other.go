//go:build !unix

package term

import "errors"

func terminalSize(int) (width, height int, err error) {
	return 0, 0, errors.New("terminal size is not supported on this platform")
}
