package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/allbin/provision/serial"
)

func TestDetectMatchesEachMarker(t *testing.T) {
	descriptions := map[string]string{
		"USB-SERIAL":   "USB-SERIAL CH340 (COM3)",
		"CH340":        "CH340 serial converter",
		"CP2102":       "CP2102 USB to UART Bridge Controller",
		"Silicon Labs": "Silicon Labs CP210x USB to UART Bridge",
	}

	for marker, desc := range descriptions {
		t.Run(marker, func(t *testing.T) {
			lister := &countingLister{ports: []serial.PortInfo{
				portInfo("/dev/ttyS0", "Standard Serial Port"),
				portInfo("/dev/ttyUSB0", desc),
			}}
			d := NewDetector(lister, nil)

			got, ok, err := d.Detect(context.Background())
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if !ok || got.Path != "/dev/ttyUSB0" {
				t.Errorf("Detect() = %v, %v; want /dev/ttyUSB0", got.Path, ok)
			}
		})
	}
}

func TestDetectNoMatch(t *testing.T) {
	lister := &countingLister{ports: []serial.PortInfo{
		portInfo("/dev/ttyS0", "Standard Serial Port"),
		portInfo("/dev/ttyACM0", "FT232R USB UART"),
		portInfo("/dev/ttyUSB1", "cp2102 lower case"),
	}}
	d := NewDetector(lister, nil)

	_, ok, err := d.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if ok {
		t.Error("Detect() should find nothing")
	}
}

func TestDetectEmptyList(t *testing.T) {
	d := NewDetector(&countingLister{}, nil)
	if _, ok, err := d.Detect(context.Background()); ok || err != nil {
		t.Errorf("Detect() = %v, %v; want false, nil", ok, err)
	}
}

// The first match in enumeration order wins; the list is not re-sorted
func TestDetectFirstInEnumerationOrder(t *testing.T) {
	lister := &countingLister{ports: []serial.PortInfo{
		portInfo("/dev/ttyUSB3", "Silicon Labs CP2102"),
		portInfo("/dev/ttyUSB0", "USB-SERIAL CH340"),
		portInfo("/dev/ttyUSB1", "CH340"),
	}}
	d := NewDetector(lister, nil)

	got, ok, err := d.Detect(context.Background())
	if err != nil || !ok {
		t.Fatalf("Detect() = %v, %v", ok, err)
	}
	if got.Path != "/dev/ttyUSB3" {
		t.Errorf("Detect() = %s, want /dev/ttyUSB3", got.Path)
	}

	matches, err := d.Matches(context.Background())
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("Matches() returned %d ports, want 3", len(matches))
	}
}

func TestDetectCustomMarkers(t *testing.T) {
	lister := &countingLister{ports: []serial.PortInfo{
		portInfo("/dev/ttyUSB0", "CP2102 USB to UART"),
		portInfo("/dev/ttyACM0", "Espressif USB JTAG/serial debug unit"),
	}}
	d := NewDetector(lister, nil, "Espressif")

	got, ok, _ := d.Detect(context.Background())
	if !ok || got.Path != "/dev/ttyACM0" {
		t.Errorf("Detect() = %v, %v; want /dev/ttyACM0", got.Path, ok)
	}
	if m := d.Markers(); len(m) != 1 || m[0] != "Espressif" {
		t.Errorf("Markers() = %v", m)
	}
}

func TestMatchMarkerIgnoresEmpty(t *testing.T) {
	d := NewDetector(&countingLister{}, nil, "", "CH340")
	if _, ok := d.MatchMarker("Standard Serial Port"); ok {
		t.Error("an empty marker must not match everything")
	}
	if m, ok := d.MatchMarker("USB2.0-Serial CH340"); !ok || m != "CH340" {
		t.Errorf("MatchMarker() = %q, %v", m, ok)
	}
}

func TestDetectListerError(t *testing.T) {
	boom := errors.New("enumeration failed")
	d := NewDetector(&countingLister{err: boom}, nil)

	if _, _, err := d.Detect(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Detect() error = %v, want %v", err, boom)
	}
}

func TestDetectCancelledContext(t *testing.T) {
	lister := &countingLister{}
	d := NewDetector(lister, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := d.Detect(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Detect() error = %v", err)
	}
	if lister.calls != 0 {
		t.Errorf("lister called %d times after cancellation", lister.calls)
	}
}

func TestFixedPort(t *testing.T) {
	got, ok, err := FixedPort("/dev/ttyUSB7").Detect(context.Background())
	if err != nil || !ok {
		t.Fatalf("Detect() = %v, %v", ok, err)
	}
	if got.Path != "/dev/ttyUSB7" || got.Name != "ttyUSB7" {
		t.Errorf("Detect() = %+v", got)
	}

	got, _, _ = FixedPort("COM3").Detect(context.Background())
	if got.Name != "COM3" {
		t.Errorf("Name = %q, want COM3", got.Name)
	}
}

func TestIsFixedPort(t *testing.T) {
	if !IsFixedPort(FixedPort("/dev/does-not-exist")) {
		t.Error("FixedPort resolver not recognised")
	}
	if IsFixedPort(NewDetector(ListerFunc(func() ([]serial.PortInfo, error) { return nil, nil }), nil)) {
		t.Error("Detector reported as a fixed port")
	}
}
