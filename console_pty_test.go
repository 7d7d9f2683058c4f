//go:build linux || darwin

package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
)

// openPTY returns a pseudo-terminal pair sized 40x12, skipping when the
// environment has none.
func openPTY(t *testing.T) (master, slave *os.File) {
	t.Helper()
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		slave.Close()
		master.Close()
	})
	if err := pty.Setsize(master, &pty.Winsize{Cols: 40, Rows: 12}); err != nil {
		t.Fatalf("set size: %v", err)
	}
	return master, slave
}

// drain copies everything the console writes into a buffer.
type drain struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (d *drain) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

func (d *drain) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.String()
}

func TestANSIConsole_PTY(t *testing.T) {
	master, slave := openPTY(t)

	c, err := NewANSIConsole(slave, slave,
		WithConsoleCapabilities(Capabilities{Colors: ColorNone, Unicode: true}),
		WithInputLatency(5*time.Millisecond))
	if err != nil {
		t.Fatalf("NewANSIConsole: %v", err)
	}

	if w, h := c.Size(); w != 40 || h != 12 {
		t.Errorf("Size() = %dx%d, want 40x12", w, h)
	}

	if err := c.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode: %v", err)
	}
	defer c.ExitRawMode()

	if _, err := master.Write([]byte("x\x1b[A\x7f")); err != nil {
		t.Fatalf("write master: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	want := []KeyEvent{
		{Key: KeyRune, Rune: 'x'},
		{Key: KeyUp},
		{Key: KeyBackspace},
	}
	for i, w := range want {
		ev, err := c.ReadKey(ctx)
		if err != nil {
			t.Fatalf("ReadKey %d: %v", i, err)
		}
		if ev != w {
			t.Errorf("ReadKey %d = %v, want %v", i, ev, w)
		}
	}
}

func TestANSIConsole_PTYReadCanceled(t *testing.T) {
	_, slave := openPTY(t)

	c, err := NewANSIConsole(slave, slave, WithInputLatency(5*time.Millisecond))
	if err != nil {
		t.Fatalf("NewANSIConsole: %v", err)
	}
	if err := c.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode: %v", err)
	}
	defer c.ExitRawMode()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.ReadKey(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ReadKey error = %v, want context.DeadlineExceeded", err)
	}
}

func TestConfirm_PTY(t *testing.T) {
	master, slave := openPTY(t)

	out := &drain{}
	go io.Copy(out, master)

	p, err := New(WithStreams(slave, slave), WithoutSignals(),
		WithCapabilities(Capabilities{Colors: ColorNone, Unicode: false}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var got bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		got, err = Confirm(gctx, p, ConfirmOptions{Message: "Proceed?"})
		return err
	})
	g.Go(func() error {
		if err := waitForOutput(gctx, out, "? Proceed? (y/n)"); err != nil {
			return err
		}
		_, err := master.Write([]byte("y\r"))
		return err
	})
	if err := g.Wait(); err != nil {
		t.Fatalf("Confirm: %v, output %q", err, out.String())
	}
	if !got {
		t.Error("Confirm = false, want true")
	}
	if err := waitForOutput(ctx, out, "V Proceed? Yes"); err != nil {
		t.Fatalf("final frame not written: %v, output %q", err, out.String())
	}
}

// waitForOutput polls d until it contains s or ctx is done.
func waitForOutput(ctx context.Context, d *drain, s string) error {
	for !strings.Contains(d.String(), s) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
	return nil
}
