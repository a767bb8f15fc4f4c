package provision

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err  *Error
		want error
	}{
		{&Error{Kind: KindValidation, Missing: []Field{FieldDeviceID}}, ErrValidation},
		{&Error{Kind: KindNoDevice}, ErrNoDevice},
		{&Error{Kind: KindTransmission, Port: "/dev/ttyUSB0", Cause: cause}, ErrTransmission},
	}

	sentinels := []error{ErrValidation, ErrNoDevice, ErrTransmission}
	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			for _, s := range sentinels {
				if got := errors.Is(tt.err, s); got != (s == tt.want) {
					t.Errorf("errors.Is(%v, %v) = %v", tt.err, s, got)
				}
			}
		})
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("resource busy")
	err := fmt.Errorf("submit: %w", &Error{Kind: KindTransmission, Port: "/dev/ttyUSB0", Cause: cause})

	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through errors.Is")
	}
	if kind, ok := KindOf(err); !ok || kind != KindTransmission {
		t.Errorf("KindOf() = %v, %v", kind, ok)
	}
	want := "submit: failed to send data to device on /dev/ttyUSB0: resource busy"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKindOfPlainError(t *testing.T) {
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf should not classify plain errors")
	}
}
