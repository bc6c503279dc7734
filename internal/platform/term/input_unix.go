//go:build unix

package term

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

type reader struct {
	buf [256]byte
}

// read polls the descriptor for one poll window and returns whatever bytes
// are available.
func (in *RawInput) read(ctx context.Context) ([]byte, error) {
	fds := []unix.PollFd{
		{Fd: int32(in.fd), Events: unix.POLLIN},
	}

	for {
		n, err := unix.Poll(fds, int(in.poll.Milliseconds()))
		if err == unix.EINTR {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("term: poll: %w", err)
		}
		if n == 0 {
			return nil, engine.ErrNoInput
		}

		rn, err := unix.Read(in.fd, in.buf[:])
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("term: read: %w", err)
		}
		if rn == 0 {
			return nil, io.EOF
		}
		return append([]byte(nil), in.buf[:rn]...), nil
	}
}
