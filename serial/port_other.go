//go:build !linux

package serial

import (
	"context"
	"errors"
	"fmt"
	"sync"

	bugst "go.bug.st/serial"
)

// port wraps a go.bug.st/serial handle on platforms without the termios path
type port struct {
	mu       sync.RWMutex
	inflight sync.WaitGroup
	handle   bugst.Port
	path     string
	closed   bool
}

var _ Port = (*port)(nil)

func toMode(config Config) *bugst.Mode {
	mode := &bugst.Mode{
		BaudRate: config.BaudRate,
		DataBits: config.DataBits,
		StopBits: bugst.OneStopBit,
	}
	if config.StopBits == 2 {
		mode.StopBits = bugst.TwoStopBits
	}
	switch config.Parity {
	case ParityOdd:
		mode.Parity = bugst.OddParity
	case ParityEven:
		mode.Parity = bugst.EvenParity
	case ParityMark:
		mode.Parity = bugst.MarkParity
	case ParitySpace:
		mode.Parity = bugst.SpaceParity
	default:
		mode.Parity = bugst.NoParity
	}
	return mode
}

func openErr(device string, err error) error {
	var portErr *bugst.PortError
	if errors.As(err, &portErr) {
		switch portErr.Code() {
		case bugst.PortNotFound:
			return fmt.Errorf("failed to open %s: %w", device, ErrDeviceNotFound)
		case bugst.PermissionDenied:
			return fmt.Errorf("failed to open %s: %w", device, ErrPermissionDenied)
		case bugst.PortBusy:
			return fmt.Errorf("failed to open %s: %w", device, ErrDeviceInUse)
		case bugst.InvalidSpeed:
			return fmt.Errorf("failed to open %s: %w", device, ErrInvalidBaudRate)
		}
	}
	return fmt.Errorf("failed to open %s: %w", device, err)
}

func openPort(device string, config Config) (Port, error) {
	handle, err := bugst.Open(device, toMode(config))
	if err != nil {
		return nil, openErr(device, err)
	}
	if err := handle.SetReadTimeout(config.ReadTimeout); err != nil {
		handle.Close()
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}
	return &port{handle: handle, path: device}, nil
}

func (p *port) Path() string {
	return p.path
}

// Close closes the serial port
func (p *port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}
	p.closed = true

	// Unblock an abandoned write and keep the handle alive until it returns
	_ = p.handle.ResetOutputBuffer()
	p.inflight.Wait()

	return p.handle.Close()
}

// Write writes data to the serial port
func (p *port) Write(data []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}
	return p.handle.Write(data)
}

// WriteContext writes data with context timeout support
func (p *port) WriteContext(ctx context.Context, data []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	handle := p.handle
	return writeWithContext(ctx, &p.inflight, func() (int, error) {
		return handle.Write(data)
	})
}
