package provision

import (
	"fmt"
	"strings"
)

// Field identifies one of the five values in a Request
type Field int

const (
	FieldDeviceID Field = iota
	FieldWiFiSSID
	FieldWiFiPassword
	FieldUserEmail
	FieldUserPassword
)

// Fields lists every field in wire order
var Fields = []Field{
	FieldDeviceID,
	FieldWiFiSSID,
	FieldWiFiPassword,
	FieldUserEmail,
	FieldUserPassword,
}

// Key returns the frame key the firmware expects for the field
func (f Field) Key() string {
	switch f {
	case FieldDeviceID:
		return "ID"
	case FieldWiFiSSID:
		return "SSID"
	case FieldWiFiPassword:
		return "PASSWORD"
	case FieldUserEmail:
		return "EMAIL"
	case FieldUserPassword:
		return "USERPASS"
	default:
		return ""
	}
}

// Label returns the operator-facing name of the field
func (f Field) Label() string {
	switch f {
	case FieldDeviceID:
		return "Device ID"
	case FieldWiFiSSID:
		return "Wi-Fi SSID"
	case FieldWiFiPassword:
		return "Wi-Fi password"
	case FieldUserEmail:
		return "User email"
	case FieldUserPassword:
		return "User password"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

func (f Field) String() string {
	return f.Label()
}

// Sensitive reports whether input for the field should be masked
func (f Field) Sensitive() bool {
	return f == FieldWiFiPassword || f == FieldUserPassword
}

// Request is the bundle of values written to a device in one run.
// It is a plain value: build a fresh one per submission.
type Request struct {
	DeviceID     string
	WiFiSSID     string
	WiFiPassword string
	UserEmail    string
	UserPassword string
}

// Value returns the value of field f
func (r Request) Value(f Field) string {
	switch f {
	case FieldDeviceID:
		return r.DeviceID
	case FieldWiFiSSID:
		return r.WiFiSSID
	case FieldWiFiPassword:
		return r.WiFiPassword
	case FieldUserEmail:
		return r.UserEmail
	case FieldUserPassword:
		return r.UserPassword
	default:
		return ""
	}
}

// With returns a copy of r with field f set to value
func (r Request) With(f Field, value string) Request {
	switch f {
	case FieldDeviceID:
		r.DeviceID = value
	case FieldWiFiSSID:
		r.WiFiSSID = value
	case FieldWiFiPassword:
		r.WiFiPassword = value
	case FieldUserEmail:
		r.UserEmail = value
	case FieldUserPassword:
		r.UserPassword = value
	}
	return r
}

// Missing returns the empty fields in wire order. Whitespace counts as a value.
func (r Request) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if r.Value(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Validate returns a KindValidation *Error if any field is empty
func (r Request) Validate() error {
	if missing := r.Missing(); len(missing) > 0 {
		return &Error{Kind: KindValidation, Missing: missing}
	}
	return nil
}

// framingHazards are characters the line protocol has no escape for
const framingHazards = ":\r\n"

// FramingHazards returns the fields whose value contains a colon or a line
// break. Such values are still sent verbatim.
func (r Request) FramingHazards() []Field {
	var hazards []Field
	for _, f := range Fields {
		if strings.ContainsAny(r.Value(f), framingHazards) {
			hazards = append(hazards, f)
		}
	}
	return hazards
}

// Detail renders every field as "Label: value" lines, passwords included,
// for the confirmation shown after a successful run.
func (r Request) Detail() string {
	var b strings.Builder
	for _, f := range Fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Label(), r.Value(f))
	}
	return b.String()
}
