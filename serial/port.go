package serial

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Port represents an open serial port. Implementations are safe to Close
// from a different goroutine than the one writing.
//
// A WriteContext that times out reports 0 bytes, but the abandoned write
// keeps running and may still put some or all of its data on the wire.
// Close discards queued output and waits for such a write to return before
// releasing the handle.
type Port interface {
	Path() string
	Close() error
	Write(data []byte) (int, error)
	WriteContext(ctx context.Context, data []byte) (int, error)
}

// Open opens a serial port with the given device path and options
func Open(device string, opts ...Option) (Port, error) {
	config, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return openPort(device, config)
}

// writeResult carries the outcome of a write performed off the caller's goroutine
type writeResult struct {
	n   int
	err error
}

// writeWithContext runs write in a goroutine and waits for it or for ctx.
// A deadline expiry is reported as ErrWriteTimeout. inflight is held until
// write returns, including after ctx gives up on it.
func writeWithContext(ctx context.Context, inflight *sync.WaitGroup, write func() (int, error)) (int, error) {
	select {
	case <-ctx.Done():
		return 0, contextWriteError(ctx.Err())
	default:
	}

	resultCh := make(chan writeResult, 1)
	inflight.Add(1)
	go func() {
		defer inflight.Done()
		n, err := write()
		resultCh <- writeResult{n: n, err: err}
	}()

	select {
	case result := <-resultCh:
		return result.n, result.err
	case <-ctx.Done():
		return 0, contextWriteError(ctx.Err())
	}
}

func contextWriteError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrWriteTimeout, err)
	}
	return err
}
