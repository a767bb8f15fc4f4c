package provision

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why a submission failed
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNoDevice
	KindTransmission
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNoDevice:
		return "no device"
	case KindTransmission:
		return "transmission"
	default:
		return "unknown"
	}
}

// Sentinels matched by *Error through errors.Is
var (
	ErrValidation   = errors.New("required fields are empty")
	ErrNoDevice     = errors.New("no compatible device detected")
	ErrTransmission = errors.New("failed to send data to device")

	ErrSubmitInFlight = errors.New("a submission is already in progress")
)

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindNoDevice:
		return ErrNoDevice
	case KindTransmission:
		return ErrTransmission
	default:
		return nil
	}
}

// Error is returned by Controller.Submit and Transmitter.Send
type Error struct {
	Kind    Kind
	Missing []Field // KindValidation only
	Port    string  // KindTransmission only
	Cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		labels := make([]string, len(e.Missing))
		for i, f := range e.Missing {
			labels[i] = f.Label()
		}
		return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(labels, ", "))
	case KindNoDevice:
		if e.Cause != nil {
			return fmt.Sprintf("%v: %v", ErrNoDevice, e.Cause)
		}
		return ErrNoDevice.Error()
	case KindTransmission:
		if e.Port != "" {
			return fmt.Sprintf("%v on %s: %v", ErrTransmission, e.Port, e.Cause)
		}
		return fmt.Sprintf("%v: %v", ErrTransmission, e.Cause)
	default:
		return fmt.Sprintf("provisioning failed: %v", e.Cause)
	}
}

// Is matches the sentinel for e.Kind
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the Kind of the first *Error in err's chain
func KindOf(err error) (Kind, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}
