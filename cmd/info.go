/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/allbin/provision/serial"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <port>",
	Short: "Display detailed information about a serial port",
	Long: `Display detailed information about a serial port including USB metadata
and whether it would be picked up as a provisioning target.

Examples:
  provision info /dev/ttyUSB0
  provision info /dev/ttyACM0 --enumerator sysfs`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		a, err := newApp(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		lister, _ := a.cfg.Lister()
		ports, err := lister.Ports()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}

		info, ok := findPort(ports, portPath)
		if !ok {
			sysfs, err := serial.GetPortInfo(portPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error getting port info: %v\n", err)
				os.Exit(1)
			}
			info = *sysfs
		}

		fmt.Printf("Port Information: %s\n\n", info.Path)
		fmt.Printf("  Name:        %s\n", info.Name)
		fmt.Printf("  Description: %s\n", info.Description)
		if marker, ok := a.detector.MatchMarker(info.Description); ok {
			fmt.Printf("  Marker:      %s\n", marker)
		} else {
			fmt.Printf("  Marker:      none (not a provisioning target)\n")
		}

		// USB Device Information
		if info.IsUSB() {
			fmt.Println("\nUSB Device Information:")
			printField("Vendor ID", info.VendorID)
			printField("Product ID", info.ProductID)
			printField("Serial", info.SerialNumber)
			printField("Interface", info.InterfaceNumber)
			printField("Bus", info.BusNumber)
			printField("Device", info.DeviceNumber)
			printField("Manufacturer", info.Manufacturer)
			printField("Product", info.Product)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func findPort(ports []serial.PortInfo, path string) (serial.PortInfo, bool) {
	for _, p := range ports {
		if p.Path == path || p.Name == path {
			return p, true
		}
	}
	return serial.PortInfo{}, false
}

func printField(label, value string) {
	if value != "" {
		fmt.Printf("  %-13s %s\n", label+":", value)
	}
}
