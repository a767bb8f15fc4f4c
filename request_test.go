package provision

import (
	"errors"
	"reflect"
	"testing"
)

func TestFieldKeys(t *testing.T) {
	want := []string{"ID", "SSID", "PASSWORD", "EMAIL", "USERPASS"}
	for i, f := range Fields {
		if f.Key() != want[i] {
			t.Errorf("Fields[%d].Key() = %q, want %q", i, f.Key(), want[i])
		}
	}
}

func TestFieldSensitive(t *testing.T) {
	for _, f := range Fields {
		want := f == FieldWiFiPassword || f == FieldUserPassword
		if f.Sensitive() != want {
			t.Errorf("%s.Sensitive() = %v, want %v", f, f.Sensitive(), want)
		}
	}
}

func TestRequestMissing(t *testing.T) {
	for _, f := range Fields {
		t.Run(f.Label(), func(t *testing.T) {
			req := validRequest().With(f, "")

			missing := req.Missing()
			if !reflect.DeepEqual(missing, []Field{f}) {
				t.Errorf("Missing() = %v, want [%v]", missing, f)
			}

			err := req.Validate()
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Validate() = %v, want ErrValidation", err)
			}
			var perr *Error
			if !errors.As(err, &perr) || !reflect.DeepEqual(perr.Missing, []Field{f}) {
				t.Errorf("Validate() missing = %+v", perr)
			}
		})
	}
}

func TestRequestValidateComplete(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestRequestWhitespaceIsAValue(t *testing.T) {
	req := validRequest()
	req.DeviceID = " "
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() = %v, whitespace should count as a value", err)
	}
}

func TestRequestAllMissing(t *testing.T) {
	err := Request{}.Validate()
	want := "required fields are empty: Device ID, Wi-Fi SSID, Wi-Fi password, User email, User password"
	if err == nil || err.Error() != want {
		t.Errorf("Validate() = %v, want %q", err, want)
	}
}

func TestRequestFramingHazards(t *testing.T) {
	req := validRequest()
	req.WiFiPassword = "pa:ss"
	req.UserPassword = "line\nbreak"

	got := req.FramingHazards()
	want := []Field{FieldWiFiPassword, FieldUserPassword}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FramingHazards() = %v, want %v", got, want)
	}

	if h := validRequest().FramingHazards(); len(h) != 0 {
		t.Errorf("FramingHazards() = %v, want none", h)
	}
}

func TestRequestDetail(t *testing.T) {
	want := "Device ID: dev1\n" +
		"Wi-Fi SSID: home\n" +
		"Wi-Fi password: pw123\n" +
		"User email: a@b.com\n" +
		"User password: secret\n"
	if got := validRequest().Detail(); got != want {
		t.Errorf("Detail() = %q, want %q", got, want)
	}
}
