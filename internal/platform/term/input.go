package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	xterm "golang.org/x/term"
)

// DefaultPoll is how long ReadKey waits for a key before giving up.
const DefaultPoll = 100 * time.Millisecond

// RawInput reads single key presses from a terminal without line buffering
// or echo. Input that is not a terminal is read as-is.
type RawInput struct {
	in      *os.File
	fd      int
	poll    time.Duration
	old     *xterm.State
	pending []byte
	reader
}

// NewRawInput switches f into raw mode when it is a terminal. Call Close to
// restore it.
func NewRawInput(f *os.File, poll time.Duration) (*RawInput, error) {
	if poll <= 0 {
		poll = DefaultPoll
	}
	in := &RawInput{in: f, fd: int(f.Fd()), poll: poll}

	if xterm.IsTerminal(in.fd) {
		old, err := xterm.MakeRaw(in.fd)
		if err != nil {
			return nil, fmt.Errorf("term: enter raw mode: %w", err)
		}
		in.old = old
	}
	return in, nil
}

// IsTerminal reports whether the input is an interactive terminal.
func (in *RawInput) IsTerminal() bool {
	return xterm.IsTerminal(in.fd)
}

// ReadKey returns the next key as a rune. It returns engine.ErrNoInput when
// nothing arrives within the poll window and io.EOF once the input closes.
// Invalid UTF-8 bytes come back as utf8.RuneError.
func (in *RawInput) ReadKey(ctx context.Context) (rune, error) {
	for !utf8.FullRune(in.pending) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		data, err := in.read(ctx)
		if errors.Is(err, io.EOF) && len(in.pending) > 0 {
			// Input ended mid-sequence; flush what is left.
			break
		}
		if err != nil {
			return 0, err
		}
		in.pending = append(in.pending, data...)
	}

	r, size := utf8.DecodeRune(in.pending)
	in.pending = in.pending[size:]
	return r, nil
}

// Close restores the terminal state.
func (in *RawInput) Close() error {
	if in.old == nil {
		return nil
	}
	err := xterm.Restore(in.fd, in.old)
	in.old = nil
	if err != nil {
		return fmt.Errorf("term: restore: %w", err)
	}
	return nil
}
