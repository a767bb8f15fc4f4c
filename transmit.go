package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/allbin/provision/serial"
)

// DefaultWriteTimeout bounds the whole five-frame transmission
const DefaultWriteTimeout = 2 * time.Second

// Port is the subset of serial.Port the transmitter needs
type Port interface {
	WriteContext(ctx context.Context, data []byte) (int, error)
	Close() error
}

// Opener opens a port by path
type Opener interface {
	Open(path string) (Port, error)
}

// OpenerFunc adapts a function to the Opener interface
type OpenerFunc func(path string) (Port, error)

func (f OpenerFunc) Open(path string) (Port, error) {
	return f(path)
}

// SerialOpener opens real serial ports at 115200 8N1 with a two second read
// timeout; opts are applied on top.
func SerialOpener(opts ...serial.Option) Opener {
	base := []serial.Option{
		serial.WithBaudRate(115200),
		serial.WithReadTimeout(2 * time.Second),
	}
	opts = append(base, opts...)

	return OpenerFunc(func(path string) (Port, error) {
		p, err := serial.Open(path, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}

// Sender writes a request to a port
type Sender interface {
	Send(ctx context.Context, path string, req Request) (int, error)
}

// Transmitter writes requests as frames, one write per frame
type Transmitter struct {
	opener       Opener
	writeTimeout time.Duration
	logger       *slog.Logger
}

var _ Sender = (*Transmitter)(nil)

// NewTransmitter returns a Transmitter. A non-positive writeTimeout selects
// DefaultWriteTimeout; a nil logger discards output.
func NewTransmitter(opener Opener, writeTimeout time.Duration, logger *slog.Logger) *Transmitter {
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &Transmitter{
		opener:       opener,
		writeTimeout: writeTimeout,
		logger:       loggerOrDiscard(logger),
	}
}

// Send opens path, writes the frames for req and closes the port on every
// path out. It returns the number of bytes written; failures are
// KindTransmission *Error values. The count excludes a frame whose write
// timed out, although part of it may have reached the device.
func (t *Transmitter) Send(ctx context.Context, path string, req Request) (written int, err error) {
	fail := func(cause error) error {
		return &Error{Kind: KindTransmission, Port: path, Cause: cause}
	}

	p, err := t.opener.Open(path)
	if err != nil {
		return 0, fail(err)
	}
	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = fail(fmt.Errorf("close: %w", cerr))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, t.writeTimeout)
	defer cancel()

	for _, frame := range Frames(req) {
		data := frame.Bytes()
		n, werr := p.WriteContext(ctx, data)
		written += n
		if werr == nil && n < len(data) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			t.logger.Debug("frame write failed", "port", path, "key", frame.Key, "error", werr)
			return written, fail(fmt.Errorf("write %s: %w", frame.Key, werr))
		}
	}

	t.logger.Debug("frames written", "port", path, "bytes", written)
	return written, nil
}

// asTransmissionError keeps *Error values from a Sender and wraps anything else
func asTransmissionError(path string, err error) error {
	var perr *Error
	if errors.As(err, &perr) {
		return err
	}
	return &Error{Kind: KindTransmission, Port: path, Cause: err}
}
