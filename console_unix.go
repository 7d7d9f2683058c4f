//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package prompt

import (
	"context"
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// rawModeState stores the original terminal state for restoration.
type rawModeState struct {
	fd      int
	termios unix.Termios
}

// enableRawMode puts the terminal into raw mode and returns the previous state.
func enableRawMode(fd int) (*rawModeState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	state := &rawModeState{fd: fd, termios: *termios}

	// Turn off:
	// - ECHO: don't echo input characters
	// - ICANON: disable canonical mode (read byte-by-byte instead of line-by-line)
	// - ISIG: disable signals (Ctrl+C arrives as a key and cancels the form)
	// - IEXTEN: disable extended input processing
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN

	// Turn off:
	// - IXON: disable software flow control (Ctrl+S, Ctrl+Q)
	// - ICRNL: don't translate CR to NL
	// - BRKINT: don't send SIGINT on break
	// - INPCK: disable parity checking
	// - ISTRIP: don't strip 8th bit
	termios.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP

	// Turn off output processing; the console writes explicit CR LF.
	termios.Oflag &^= unix.OPOST

	termios.Cflag |= unix.CS8

	// VMIN = 1: read returns when at least 1 byte is available
	// VTIME = 0: no timeout
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, err
	}

	return state, nil
}

// disableRawMode restores the terminal to its previous state.
func disableRawMode(state *rawModeState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(state.fd, ioctlSetTermios, &state.termios)
}

// getTerminalSize returns the terminal dimensions.
func getTerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// read blocks until input bytes are available, waking every c.latency to check ctx.
func (c *ANSIConsole) read(ctx context.Context) ([]byte, error) {
	fd := int(c.in.Fd())
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ready, err := selectWithTimeout(fd, c.latency)
		if err != nil {
			return nil, err
		}
		if !ready {
			continue
		}

		n, err := unix.Read(fd, c.buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}
		if n == 0 {
			return nil, io.EOF
		}
		return c.buf[:n], nil
	}
}

// selectWithTimeout performs a select() call on the given fd with timeout.
// Returns (true, nil) if the fd is ready for reading.
// Returns (false, nil) on timeout.
// Returns (false, err) on error.
func selectWithTimeout(fd int, timeout time.Duration) (ready bool, err error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}

	return n > 0, nil
}
