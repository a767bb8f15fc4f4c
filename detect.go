package provision

import (
	"context"
	"log/slog"
	"strings"

	"github.com/allbin/provision/serial"
)

// DefaultMarkers are description substrings of the USB-to-serial bridges
// found on common ESP32 development boards
var DefaultMarkers = []string{"USB-SERIAL", "CH340", "CP2102", "Silicon Labs"}

// Lister enumerates the serial ports visible to the host
type Lister interface {
	Ports() ([]serial.PortInfo, error)
}

// ListerFunc adapts a function to the Lister interface
type ListerFunc func() ([]serial.PortInfo, error)

func (f ListerFunc) Ports() ([]serial.PortInfo, error) {
	return f()
}

var (
	// SystemLister asks the operating system's device registry
	SystemLister Lister = ListerFunc(serial.SystemPorts)
	// SysfsLister scans /dev and sysfs directly (Linux only)
	SysfsLister Lister = ListerFunc(serial.ListPortInfos)
)

// PortResolver decides which port a submission is written to
type PortResolver interface {
	Detect(ctx context.Context) (serial.PortInfo, bool, error)
}

// Detector resolves the target port by matching chipset markers against
// port descriptions
type Detector struct {
	lister  Lister
	markers []string
	logger  *slog.Logger
}

var _ PortResolver = (*Detector)(nil)

// NewDetector returns a Detector over lister. With no markers it uses
// DefaultMarkers. A nil logger discards output.
func NewDetector(lister Lister, logger *slog.Logger, markers ...string) *Detector {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return &Detector{
		lister:  lister,
		markers: append([]string(nil), markers...),
		logger:  loggerOrDiscard(logger),
	}
}

// Markers returns the chipset markers in match order
func (d *Detector) Markers() []string {
	return append([]string(nil), d.markers...)
}

// MatchMarker returns the first marker contained in description.
// Matching is case sensitive.
func (d *Detector) MatchMarker(description string) (string, bool) {
	for _, m := range d.markers {
		if m != "" && strings.Contains(description, m) {
			return m, true
		}
	}
	return "", false
}

// Matches returns every port whose description carries a marker, in
// enumeration order
func (d *Detector) Matches(ctx context.Context) ([]serial.PortInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ports, err := d.lister.Ports()
	if err != nil {
		return nil, err
	}

	var matched []serial.PortInfo
	for _, p := range ports {
		if _, ok := d.MatchMarker(p.Description); ok {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Detect returns the first matching port in enumeration order. ok is false
// when nothing matches.
func (d *Detector) Detect(ctx context.Context) (serial.PortInfo, bool, error) {
	matched, err := d.Matches(ctx)
	if err != nil {
		return serial.PortInfo{}, false, err
	}
	if len(matched) == 0 {
		d.logger.Debug("no port matched chipset markers", "markers", d.markers)
		return serial.PortInfo{}, false, nil
	}

	if len(matched) > 1 {
		others := make([]string, 0, len(matched)-1)
		for _, p := range matched[1:] {
			others = append(others, p.Path)
		}
		d.logger.Warn("multiple compatible devices attached, using first enumerated",
			"port", matched[0].Path, "ignored", others)
	}
	return matched[0], true, nil
}

// FixedPort returns a resolver that always yields path, skipping detection
func FixedPort(path string) PortResolver {
	return fixedPort(path)
}

// IsFixedPort reports whether r was built by FixedPort. Its answer says
// nothing about whether a device is attached.
func IsFixedPort(r PortResolver) bool {
	_, ok := r.(fixedPort)
	return ok
}

type fixedPort string

func (p fixedPort) Detect(ctx context.Context) (serial.PortInfo, bool, error) {
	if err := ctx.Err(); err != nil {
		return serial.PortInfo{}, false, err
	}
	path := string(p)
	return serial.PortInfo{
		Name:        path[strings.LastIndexAny(path, `/\`)+1:],
		Path:        path,
		Description: "configured port",
	}, true, nil
}
