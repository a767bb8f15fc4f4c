package provision

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/allbin/provision/serial"
)

var errWriteFailed = errors.New("device disconnected")

// memPort records writes in memory. failAt is the 1-based write that
// fails; zero never fails.
type memPort struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	writes   int
	failAt   int
	short    bool
	closed   int
	closeErr error
}

func (p *memPort) WriteContext(ctx context.Context, data []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.writes++
	if p.failAt != 0 && p.writes == p.failAt {
		if p.short {
			n := len(data) / 2
			p.buf.Write(data[:n])
			return n, nil
		}
		return 0, errWriteFailed
	}
	return p.buf.Write(data)
}

func (p *memPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed++
	return p.closeErr
}

// memOpener hands out a single memPort and records which paths were opened
type memOpener struct {
	port    *memPort
	openErr error
	opened  []string
}

func (o *memOpener) Open(path string) (Port, error) {
	o.opened = append(o.opened, path)
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.port, nil
}

// countingLister returns a fixed port list and counts enumerations
type countingLister struct {
	ports []serial.PortInfo
	err   error
	calls int
}

func (l *countingLister) Ports() ([]serial.PortInfo, error) {
	l.calls++
	return l.ports, l.err
}

func portInfo(path, description string) serial.PortInfo {
	return serial.PortInfo{Path: path, Description: description}
}

func validRequest() Request {
	return Request{
		DeviceID:     "dev1",
		WiFiSSID:     "home",
		WiFiPassword: "pw123",
		UserEmail:    "a@b.com",
		UserPassword: "secret",
	}
}
