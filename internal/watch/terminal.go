package watch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Terminal owns stdin for one watch session: raw mode so single key
// presses arrive without ENTER, and a cancellable reader so the session
// can hand stdin back to list mode.
type Terminal struct {
	in    *os.File
	out   *os.File
	state *term.State
	cr    cancelreader.CancelReader
}

// OpenTerminal switches in to raw mode when it is a terminal.
func OpenTerminal(in, out *os.File) (*Terminal, error) {
	t := &Terminal{in: in, out: out}

	if term.IsTerminal(int(in.Fd())) {
		state, err := term.MakeRaw(int(in.Fd()))
		if err != nil {
			return nil, fmt.Errorf("enable raw mode: %w", err)
		}
		t.state = state
	}

	cr, err := cancelreader.NewReader(in)
	if err != nil {
		t.restore()
		return nil, fmt.Errorf("open terminal input: %w", err)
	}
	t.cr = cr
	return t, nil
}

// Read reads raw input bytes. It fails with cancelreader.ErrCanceled after
// Cancel.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.cr.Read(p)
}

// Cancel unblocks a pending Read.
func (t *Terminal) Cancel() {
	t.cr.Cancel()
}

// Width returns the current terminal width.
func (t *Terminal) Width() (int, error) {
	w, _, err := term.GetSize(int(t.out.Fd()))
	return w, err
}

// Writer returns the output writer. In raw mode the terminal no longer
// maps "\n" to "\r\n", so the writer does.
func (t *Terminal) Writer() io.Writer {
	if t.state == nil {
		return t.out
	}
	return crlfWriter{w: t.out}
}

// Close cancels the reader and restores the terminal mode.
func (t *Terminal) Close() error {
	t.cr.Cancel()
	err := t.cr.Close()
	if rerr := t.restore(); err == nil {
		err = rerr
	}
	return err
}

func (t *Terminal) restore() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	return err
}

type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	converted := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	if _, err := c.w.Write(converted); err != nil {
		return 0, err
	}
	return len(p), nil
}
