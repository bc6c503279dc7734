//go:build !unix

package term

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

type chunk struct {
	data []byte
	err  error
}

// reader pumps the file from a background goroutine, since there is no
// portable way to wait on it with a timeout.
type reader struct {
	once   sync.Once
	chunks chan chunk
}

func (in *RawInput) read(ctx context.Context) ([]byte, error) {
	in.once.Do(func() {
		in.chunks = make(chan chunk, 1)
		go in.pump()
	})

	timer := time.NewTimer(in.poll)
	defer timer.Stop()

	select {
	case c := <-in.chunks:
		if c.err != nil {
			// Keep reporting the terminal error to later calls.
			go func() { in.chunks <- c }()
		}
		return c.data, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, engine.ErrNoInput
	}
}

func (in *RawInput) pump() {
	buf := make([]byte, 256)
	for {
		n, err := in.in.Read(buf)
		if n > 0 {
			in.chunks <- chunk{data: append([]byte(nil), buf[:n]...)}
		}
		if err != nil {
			in.chunks <- chunk{err: err}
			return
		}
	}
}
