//go:build windows

package prompt

import (
	"context"
	"io"

	"golang.org/x/sys/windows"
)

// rawModeState stores the original console modes for restoration.
type rawModeState struct {
	in      windows.Handle
	inMode  uint32
	out     windows.Handle
	outMode uint32
}

// enableRawMode puts the Windows console into raw-ish mode with VT input and output,
// and returns the previous modes for restoration.
func enableRawMode(fd int) (*rawModeState, error) {
	in := windows.Handle(fd)

	var inMode uint32
	if err := windows.GetConsoleMode(in, &inMode); err != nil {
		return nil, err
	}

	raw := inMode
	raw &^= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	raw |= windows.ENABLE_EXTENDED_FLAGS | windows.ENABLE_VIRTUAL_TERMINAL_INPUT

	if err := windows.SetConsoleMode(in, raw); err != nil {
		return nil, err
	}

	state := &rawModeState{in: in, inMode: inMode}

	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err == nil {
		var outMode uint32
		if windows.GetConsoleMode(out, &outMode) == nil {
			state.out = out
			state.outMode = outMode
			_ = windows.SetConsoleMode(out, outMode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
		}
	}

	return state, nil
}

// disableRawMode restores the console to its previous modes.
func disableRawMode(state *rawModeState) error {
	if state == nil {
		return nil
	}
	if state.out != 0 {
		_ = windows.SetConsoleMode(state.out, state.outMode)
	}
	return windows.SetConsoleMode(state.in, state.inMode)
}

// getTerminalSize returns the terminal dimensions.
func getTerminalSize(fd int) (width, height int, err error) {
	h := windows.Handle(fd)
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return 0, 0, err
	}

	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height, nil
}

// read blocks until input bytes are available or ctx is done.
// A read abandoned by cancellation completes in the background and its bytes are dropped.
func (c *ANSIConsole) read(ctx context.Context) ([]byte, error) {
	type readResult struct {
		data []byte
		err  error
	}
	done := make(chan readResult, 1)
	go func() {
		buf := make([]byte, len(c.buf))
		n, err := c.in.Read(buf)
		done <- readResult{data: buf[:n], err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		if len(res.data) == 0 {
			return nil, io.EOF
		}
		return res.data, nil
	}
}
