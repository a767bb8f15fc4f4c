package provision

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

func TestSendWritesFiveFrames(t *testing.T) {
	p := &memPort{}
	opener := &memOpener{port: p}
	tx := NewTransmitter(opener, 0, nil)

	n, err := tx.Send(context.Background(), "/dev/ttyUSB0", validRequest())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	want := "ID:dev1\nSSID:home\nPASSWORD:pw123\nEMAIL:a@b.com\nUSERPASS:secret\n"
	if got := p.buf.String(); got != want {
		t.Errorf("wrote %q, want %q", got, want)
	}
	if n != len(want) {
		t.Errorf("Send() = %d bytes, want %d", n, len(want))
	}
	if p.writes != 5 {
		t.Errorf("got %d writes, want one per frame", p.writes)
	}
	if p.closed != 1 {
		t.Errorf("port closed %d times, want 1", p.closed)
	}
	if len(opener.opened) != 1 || opener.opened[0] != "/dev/ttyUSB0" {
		t.Errorf("opened %v", opener.opened)
	}
}

func TestSendClosesOnMidSequenceFailure(t *testing.T) {
	for failAt := 1; failAt <= 5; failAt++ {
		p := &memPort{failAt: failAt}
		tx := NewTransmitter(&memOpener{port: p}, 0, nil)

		_, err := tx.Send(context.Background(), "/dev/ttyUSB0", validRequest())
		if !errors.Is(err, ErrTransmission) {
			t.Errorf("failAt=%d: error = %v, want ErrTransmission", failAt, err)
		}
		if !errors.Is(err, errWriteFailed) {
			t.Errorf("failAt=%d: cause not preserved: %v", failAt, err)
		}
		if p.closed != 1 {
			t.Errorf("failAt=%d: port closed %d times, want 1", failAt, p.closed)
		}
		if p.writes != failAt {
			t.Errorf("failAt=%d: %d writes attempted, want to stop at the failure", failAt, p.writes)
		}
	}
}

func TestSendShortWrite(t *testing.T) {
	p := &memPort{failAt: 2, short: true}
	tx := NewTransmitter(&memOpener{port: p}, 0, nil)

	n, err := tx.Send(context.Background(), "/dev/ttyUSB0", validRequest())
	if !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("error = %v, want io.ErrShortWrite", err)
	}
	if n != len("ID:dev1\n")+len("SSID:home\n")/2 {
		t.Errorf("Send() = %d bytes", n)
	}
	if p.closed != 1 {
		t.Errorf("port closed %d times, want 1", p.closed)
	}
}

func TestSendOpenFailure(t *testing.T) {
	busy := errors.New("resource busy")
	tx := NewTransmitter(&memOpener{openErr: busy}, 0, nil)

	n, err := tx.Send(context.Background(), "/dev/ttyUSB0", validRequest())
	if n != 0 {
		t.Errorf("Send() = %d bytes, want 0", n)
	}
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind != KindTransmission || perr.Port != "/dev/ttyUSB0" {
		t.Fatalf("error = %#v", err)
	}
	if !errors.Is(err, busy) {
		t.Errorf("cause not preserved: %v", err)
	}
}

func TestSendCloseFailure(t *testing.T) {
	p := &memPort{closeErr: errors.New("input/output error")}
	tx := NewTransmitter(&memOpener{port: p}, 0, nil)

	_, err := tx.Send(context.Background(), "/dev/ttyUSB0", validRequest())
	if !errors.Is(err, ErrTransmission) {
		t.Errorf("error = %v, want ErrTransmission", err)
	}
}

// A close error must not mask the write error that preceded it
func TestSendCloseFailureAfterWriteFailure(t *testing.T) {
	p := &memPort{failAt: 1, closeErr: errors.New("input/output error")}
	tx := NewTransmitter(&memOpener{port: p}, 0, nil)

	_, err := tx.Send(context.Background(), "/dev/ttyUSB0", validRequest())
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("error = %v, want the write failure", err)
	}
}

func TestNewTransmitterDefaults(t *testing.T) {
	tx := NewTransmitter(&memOpener{}, -time.Second, nil)
	if tx.writeTimeout != DefaultWriteTimeout {
		t.Errorf("writeTimeout = %v, want %v", tx.writeTimeout, DefaultWriteTimeout)
	}
	if tx.logger == nil {
		t.Error("logger should default to a discard logger")
	}
}

type deadlinePort struct {
	memPort
	deadline time.Time
	ok       bool
}

func (p *deadlinePort) WriteContext(ctx context.Context, data []byte) (int, error) {
	p.deadline, p.ok = ctx.Deadline()
	return p.memPort.WriteContext(ctx, data)
}

func TestSendAppliesWriteTimeout(t *testing.T) {
	p := &deadlinePort{}
	opener := OpenerFunc(func(string) (Port, error) { return p, nil })
	tx := NewTransmitter(opener, 2*time.Second, nil)

	start := time.Now()
	if _, err := tx.Send(context.Background(), "/dev/ttyUSB0", validRequest()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !p.ok {
		t.Fatal("writes ran without a deadline")
	}
	if d := p.deadline.Sub(start); d <= 0 || d > 2*time.Second+time.Second {
		t.Errorf("deadline %v after start, want about 2s", d)
	}
}
