// Package serial provides the serial port plumbing used to provision
// microcontrollers: opening a port for writing and discovering which ports
// are present and what is attached to them.
//
// # Basic Usage
//
// Open a serial port with default configuration (115200 8N1, 2s read timeout):
//
//	port, err := serial.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
//	defer cancel()
//	n, err := port.WriteContext(ctx, []byte("ID:dev1\n"))
//
// # Configuration Options
//
// Use functional options for custom configuration:
//
//	port, err := serial.Open("/dev/ttyUSB0",
//	    serial.WithBaudRate(115200),
//	    serial.WithReadTimeout(2*time.Second),
//	    serial.WithSyncWrite(),
//	)
//
// # Port Discovery
//
// Two enumerators are available. ListPortInfos scans /dev and reads USB
// metadata from sysfs (Linux only); SystemPorts asks the operating system's
// device registry and works on Linux, macOS and Windows:
//
//	infos, err := serial.SystemPorts()
//	for _, info := range infos {
//	    fmt.Printf("%s: %s (VID=%s PID=%s)\n",
//	        info.Path, info.Description, info.VendorID, info.ProductID)
//	}
//
// Description is free text built from the adapter's USB strings, for
// example "Silicon Labs CP2102 USB to UART Bridge Controller".
//
// # Error Handling
//
// Open failures wrap ErrDeviceNotFound, ErrPermissionDenied or
// ErrDeviceInUse; a WriteContext deadline wraps ErrWriteTimeout. Use
// errors.Is:
//
//	if errors.Is(err, serial.ErrDeviceInUse) {
//	    // another program holds the port
//	}
//
// # Platform Support
//
// On Linux ports are driven through termios via golang.org/x/sys/unix. Other
// platforms use go.bug.st/serial.
package serial
