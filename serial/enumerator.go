package serial

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.bug.st/serial/enumerator"
)

// detailedPortsList is swapped out in tests
var detailedPortsList = enumerator.GetDetailedPortsList

// SystemPorts enumerates serial ports through the operating system's own
// device registry (udev on Linux, IOKit on macOS, SetupAPI on Windows).
// Order is whatever the OS reports; it is not sorted.
//
// The registry reports no USB manufacturer string. On Linux it is read from
// sysfs so descriptions match ListPortInfos ("Silicon Labs CP2102 ...");
// elsewhere the description is the product string alone, and a marker that
// only names the manufacturer will not match.
func SystemPorts() ([]PortInfo, error) {
	details, err := detailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumerationFailed, err)
	}

	infos := make([]PortInfo, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		infos = append(infos, fromDetails(d))
	}
	return infos, nil
}

func fromDetails(d *enumerator.PortDetails) PortInfo {
	info := PortInfo{
		Name: filepath.Base(d.Name),
		Path: d.Name,
	}
	if d.IsUSB {
		info.VendorID = strings.ToLower(d.VID)
		info.ProductID = strings.ToLower(d.PID)
		info.SerialNumber = d.SerialNumber
		info.Product = strings.TrimSpace(d.Product)
		info.Manufacturer = usbManufacturer(info.Name)
	}

	info.Description = describe(&info)
	return info
}
