package provision

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/allbin/provision/serial"
)

// State is the controller's submission state
type State int32

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Receipt describes a completed transmission
type Receipt struct {
	Port         serial.PortInfo
	Request      Request
	BytesWritten int
}

// Controller runs one submission at a time: validate, resolve the port,
// transmit
type Controller struct {
	resolver PortResolver
	sender   Sender
	logger   *slog.Logger
	state    atomic.Int32
}

// NewController wires a resolver and a sender together. A nil logger
// discards output.
func NewController(resolver PortResolver, sender Sender, logger *slog.Logger) *Controller {
	return &Controller{
		resolver: resolver,
		sender:   sender,
		logger:   loggerOrDiscard(logger),
	}
}

// State reports whether a submission is in flight
func (c *Controller) State() State {
	return State(c.state.Load())
}

// DeviceDetected reports whether the resolver currently finds a port
func (c *Controller) DeviceDetected(ctx context.Context) bool {
	_, ok, err := c.resolver.Detect(ctx)
	if err != nil {
		c.logger.Warn("device detection failed", "error", err)
		return false
	}
	return ok
}

// Submit provisions the device with req. Validation runs before any port
// access and detection runs before any write. Failures are *Error values;
// ErrSubmitInFlight is returned, with no side effects, while another
// submission is running.
func (c *Controller) Submit(ctx context.Context, req Request) (Receipt, error) {
	if !c.state.CompareAndSwap(int32(StateIdle), int32(StateSubmitting)) {
		return Receipt{}, ErrSubmitInFlight
	}
	defer c.state.Store(int32(StateIdle))

	if err := req.Validate(); err != nil {
		c.logger.Info("submission rejected", "missing", req.Missing())
		return Receipt{}, err
	}

	for _, f := range req.FramingHazards() {
		c.logger.Warn("value contains a framing character and is sent verbatim", "field", f.Key())
	}

	port, ok, err := c.resolver.Detect(ctx)
	if err != nil {
		c.logger.Warn("device detection failed", "error", err)
		return Receipt{}, &Error{Kind: KindNoDevice, Cause: err}
	}
	if !ok {
		c.logger.Info("no compatible device detected")
		return Receipt{}, &Error{Kind: KindNoDevice}
	}

	c.logger.Info("sending provisioning data", "port", port.Path, "description", port.Description)
	n, err := c.sender.Send(ctx, port.Path, req)
	if err != nil {
		c.logger.Error("transmission failed", "port", port.Path, "bytes", n, "error", err)
		return Receipt{}, asTransmissionError(port.Path, err)
	}

	c.logger.Info("device provisioned", "port", port.Path, "device_id", req.DeviceID, "bytes", n)
	return Receipt{Port: port, Request: req, BytesWritten: n}, nil
}
