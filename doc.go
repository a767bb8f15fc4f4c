// Package provision writes Wi-Fi and account credentials to an ESP32 over a
// serial line.
//
// A provisioning run is one linear pass: validate the operator's Request,
// resolve the serial port the board is attached to, and write five frames.
//
//	detector := provision.NewDetector(provision.SystemLister, logger)
//	tx := provision.NewTransmitter(provision.SerialOpener(), 2*time.Second, logger)
//	ctrl := provision.NewController(detector, tx, logger)
//
//	receipt, err := ctrl.Submit(ctx, provision.Request{
//	    DeviceID:     "dev1",
//	    WiFiSSID:     "home",
//	    WiFiPassword: "pw123",
//	    UserEmail:    "a@b.com",
//	    UserPassword: "secret",
//	})
//
// # Wire Format
//
// Each frame is KEY:value followed by a single newline, sent in this order:
//
//	ID:dev1
//	SSID:home
//	PASSWORD:pw123
//	EMAIL:a@b.com
//	USERPASS:secret
//
// Values are sent verbatim. Nothing is read back from the board, so a
// successful Submit means the bytes left the host, not that the firmware
// accepted them.
//
// # Port Detection
//
// Detector picks the first enumerated port whose description contains one
// of the chipset markers (DefaultMarkers). When several boards are attached
// the winner depends on the operating system's enumeration order; use
// FixedPort to pin a path instead.
//
// # Error Handling
//
// Submit failures are *Error values whose Kind is KindValidation,
// KindNoDevice or KindTransmission:
//
//	switch {
//	case errors.Is(err, provision.ErrValidation):
//	case errors.Is(err, provision.ErrNoDevice):
//	case errors.Is(err, provision.ErrTransmission):
//	}
package provision
