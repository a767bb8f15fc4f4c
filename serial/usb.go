package serial

import (
	"os"
	"path/filepath"
	"strings"
)

// sysfsRoot is the sysfs mount point; tests point it at a fixture tree
var sysfsRoot = "/sys"

// readSysfsFile returns the trimmed contents of a sysfs attribute, or "" if
// it cannot be read
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// enrichUSBInfo fills the USB fields of info from sysfs.
//
// /sys/class/tty/<name>/device resolves to the USB interface directory (or
// to a child of it for usb-serial drivers such as cp210x and ch341, which
// add a ttyUSBn node below the interface). The interface directory carries
// bInterfaceNumber and its parent is the USB device with idVendor,
// idProduct and friends. Missing files leave fields empty.
func enrichUSBInfo(info *PortInfo) {
	devicePath := filepath.Join(sysfsRoot, "class", "tty", info.Name, "device")
	resolved, err := filepath.EvalSymlinks(devicePath)
	if err != nil {
		return
	}

	interfacePath := resolved
	if !fileExists(filepath.Join(interfacePath, "bInterfaceNumber")) {
		interfacePath = filepath.Dir(resolved)
	}
	info.InterfaceNumber = readSysfsFile(filepath.Join(interfacePath, "bInterfaceNumber"))

	usbDevicePath := filepath.Dir(interfacePath)
	info.VendorID = readSysfsFile(filepath.Join(usbDevicePath, "idVendor"))
	info.ProductID = readSysfsFile(filepath.Join(usbDevicePath, "idProduct"))
	info.SerialNumber = readSysfsFile(filepath.Join(usbDevicePath, "serial"))
	info.Manufacturer = readSysfsFile(filepath.Join(usbDevicePath, "manufacturer"))
	info.Product = readSysfsFile(filepath.Join(usbDevicePath, "product"))
	info.BusNumber = readSysfsFile(filepath.Join(usbDevicePath, "busnum"))
	info.DeviceNumber = readSysfsFile(filepath.Join(usbDevicePath, "devnum"))
}

// usbManufacturer returns the sysfs manufacturer string of a tty, or "" when
// there is none (non-Linux hosts, non-USB ports)
func usbManufacturer(name string) string {
	info := PortInfo{Name: name}
	enrichUSBInfo(&info)
	return info.Manufacturer
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
