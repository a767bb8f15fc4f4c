/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/allbin/provision"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// sendFlags maps each request field to the flag that sets it
var sendFlags = map[provision.Field]string{
	provision.FieldDeviceID:     "id",
	provision.FieldWiFiSSID:     "ssid",
	provision.FieldWiFiPassword: "wifi-password",
	provision.FieldUserEmail:    "email",
	provision.FieldUserPassword: "user-password",
}

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// sendCmd provisions a device without the form
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Provision a device from command-line flags",
	Long: `Provision a device without the interactive form.

All five values are required. The target port is detected the same way the
form does it unless --port is given.

Example usage:
  provision send --id dev1 --ssid home --wifi-password pw123 \
      --email a@b.com --user-password secret
  provision send --generate-id --ssid home ... --port /dev/ttyUSB1`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		req, err := requestFromFlags(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
			os.Exit(1)
		}

		a, err := newApp(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s Provisioning device %q...\n", infoStyle.Render("⚡"), req.DeviceID)

		receipt, err := a.controller.Submit(a.ctx, req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("✗"), sendGuidance(err))
			os.Exit(1)
		}

		fmt.Printf("%s Sent %d bytes to %s\n", successStyle.Render("✓"), receipt.BytesWritten, receipt.Port.Path)
		fmt.Print(receipt.Request.Detail())
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	addSendFlags(sendCmd)
}

func addSendFlags(cmd *cobra.Command) {
	for _, f := range provision.Fields {
		cmd.Flags().String(sendFlags[f], "", f.Label())
	}
	cmd.Flags().Bool("generate-id", false, "Use a random UUID as the device ID")
}

// requestFromFlags builds the request. Values are taken as given, without
// trimming.
func requestFromFlags(cmd *cobra.Command) (provision.Request, error) {
	var req provision.Request
	for _, f := range provision.Fields {
		value, _ := cmd.Flags().GetString(sendFlags[f])
		req = req.With(f, value)
	}

	generate, _ := cmd.Flags().GetBool("generate-id")
	if generate {
		if cmd.Flags().Changed(sendFlags[provision.FieldDeviceID]) {
			return provision.Request{}, errors.New("--id and --generate-id are mutually exclusive")
		}
		req = req.With(provision.FieldDeviceID, uuid.NewString())
	}
	return req, nil
}

// sendGuidance turns a submission error into a message naming what to do
func sendGuidance(err error) string {
	var perr *provision.Error
	if !errors.As(err, &perr) {
		return err.Error()
	}

	switch perr.Kind {
	case provision.KindValidation:
		flags := make([]string, len(perr.Missing))
		for i, f := range perr.Missing {
			flags[i] = "--" + sendFlags[f]
		}
		return fmt.Sprintf("all fields are required, missing: %s", strings.Join(flags, ", "))
	case provision.KindNoDevice:
		msg := "no ESP32 detected; connect the device or pass --port"
		if perr.Cause != nil {
			msg += fmt.Sprintf(" (%v)", perr.Cause)
		}
		return msg
	default:
		return perr.Error()
	}
}
