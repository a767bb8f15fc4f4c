/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/allbin/provision"
	"github.com/allbin/provision/internal/tui/colors"
	"github.com/allbin/provision/serial"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List serial ports and mark provisionable devices",
	Long: `List serial ports together with their descriptions.

Ports whose description contains a chipset marker are marked with *. By
default only USB attached ports are shown; --all includes built-in UARTs.

The port list comes from the operating system (--enumerator system, the
default) or from /dev and sysfs (--enumerator sysfs, Linux only).
Descriptions are "<manufacturer> <product>" on Linux with either
enumerator. On macOS and Windows the system enumerator reports the product
string only, so a manufacturer-only marker such as "Silicon Labs" may not
match there.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
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

		all, _ := cmd.Flags().GetBool("all")
		tableFormat, _ := cmd.Flags().GetBool("table")

		rows := filterPorts(ports, a.detector, all)
		if len(rows) == 0 {
			fmt.Println("No serial ports found")
			return
		}

		if tableFormat {
			renderTable(rows)
		} else {
			renderSimple(rows)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("all", "a", false, "Include ports that are not USB attached")
	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

// portRow is a listed port and the marker it matched, if any
type portRow struct {
	serial.PortInfo
	Marker string
}

// filterPorts keeps USB ports and marker matches unless all is set
func filterPorts(ports []serial.PortInfo, d *provision.Detector, all bool) []portRow {
	var rows []portRow
	for _, p := range ports {
		marker, matched := d.MatchMarker(p.Description)
		if !all && !matched && !p.IsUSB() {
			continue
		}
		rows = append(rows, portRow{PortInfo: p, Marker: marker})
	}
	return rows
}

func usbID(p serial.PortInfo) string {
	if !p.IsUSB() {
		return ""
	}
	return p.VendorID + ":" + p.ProductID
}

// renderTable renders the port list as a static bubble-table
func renderTable(rows []portRow) {
	fmt.Printf("Found %d serial port(s):\n\n", len(rows))

	columns := []table.Column{
		table.NewColumn("port", "Port", 16),
		table.NewColumn("usb", "VID:PID", 10),
		table.NewColumn("serial", "Serial", 18),
		table.NewColumn("description", "Description", 40),
		table.NewColumn("marker", "Marker", 14),
	}

	matchStyle := lipgloss.NewStyle().Foreground(colors.Green).Bold(true)

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		row := table.NewRow(table.RowData{
			"port":        r.Path,
			"usb":         usbID(r.PortInfo),
			"serial":      r.SerialNumber,
			"description": r.Description,
			"marker":      r.Marker,
		})
		if r.Marker != "" {
			row = row.WithStyle(matchStyle)
		}
		tableRows = append(tableRows, row)
	}

	t := table.New(columns).
		WithRows(tableRows).
		HeaderStyle(lipgloss.NewStyle().Foreground(colors.Mauve).Bold(true)).
		BorderRounded()

	fmt.Println(t.View())
}

// renderSimple renders the port list in simple text format
func renderSimple(rows []portRow) {
	for _, r := range rows {
		fmt.Println(simpleLine(r))
	}
}

func simpleLine(r portRow) string {
	mark := " "
	if r.Marker != "" {
		mark = "*"
	}
	parts := []string{mark, r.Path}
	if id := usbID(r.PortInfo); id != "" {
		parts = append(parts, "["+id+"]")
	}
	if r.Description != "" {
		parts = append(parts, r.Description)
	}
	return strings.Join(parts, " ")
}
