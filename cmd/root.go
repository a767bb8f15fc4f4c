/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/allbin/provision/internal/config"
	"github.com/allbin/provision/internal/logging"
	"github.com/allbin/provision/internal/tui/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	v       = config.New()
)

// rootCmd runs the interactive provisioning form
var rootCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision an ESP32 with Wi-Fi and user credentials over serial",
	Long: `Provision an ESP32 development board over its USB serial bridge.

The form collects a device ID, Wi-Fi credentials and user credentials,
detects the board by its USB-to-serial chipset (CP2102, CH340, ...) and
writes five KEY:value lines to it at 115200 baud.

Keys:
  tab/shift+tab  move between fields
  enter          next field, submits on the last one
  ctrl+s         submit
  ctrl+g         generate a random device ID
  ctrl+c         quit

Settings may also come from a config file (--config) or PROVISION_*
environment variables, e.g. PROVISION_PORT=/dev/ttyUSB1.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// The form owns the terminal; hold log output until it exits
		var logs logging.Buffer
		a, err := newApp(&logs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		err = runForm(a)
		if ferr := logs.FlushTo(os.Stderr); ferr != nil && err == nil {
			err = ferr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute runs the command tree
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (yaml, toml or json)")
	flags.StringP("port", "p", "", "Serial port to use instead of detecting one")
	flags.IntP("baud", "b", 115200, "Baud rate")
	flags.String("enumerator", config.EnumeratorSystem, "Port enumerator: system or sysfs")
	flags.StringSlice("markers", nil, "Chipset markers matched against port descriptions")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.Bool("sync-writes", false, "Enable synchronous writes (O_SYNC)")

	for _, name := range []string{
		config.KeyPort,
		config.KeyBaud,
		config.KeyEnumerator,
		config.KeyMarkers,
		config.KeyLogLevel,
		config.KeySyncWrites,
	} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func runForm(a *app) error {
	m := models.NewFormModel(a.ctx, a.controller, a.resolver)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if receipt, ok := m.Receipt(); ok {
		a.logger.Info("provisioning complete", "port", receipt.Port.Path, "device_id", receipt.Request.DeviceID)
	}
	return nil
}
