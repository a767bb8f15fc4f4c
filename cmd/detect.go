/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// detectCmd reports which port the form would write to
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the serial port a submission would use",
	Long: `Enumerate serial ports and report the first one whose description
contains a chipset marker. When more than one port matches, all of them are
shown and the one that would be used is marked.

Exits with status 1 when no device is found.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if a.cfg.Port != "" {
			fmt.Printf("%s %s (configured, detection skipped)\n", successStyle.Render("✓"), a.cfg.Port)
			return
		}

		matched, err := a.detector.Matches(a.ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}
		if len(matched) == 0 {
			fmt.Fprintf(os.Stderr, "%s Device detected: no\n", errorStyle.Render("✗"))
			fmt.Fprintf(os.Stderr, "  Connect the device and try again. Markers: %v\n", a.detector.Markers())
			os.Exit(1)
		}

		for i, p := range matched {
			marker, _ := a.detector.MatchMarker(p.Description)
			if i == 0 {
				fmt.Printf("%s %s  %s [%s]\n", successStyle.Render("✓"), p.Path, p.Description, marker)
				continue
			}
			fmt.Printf("  %s  %s [%s] (ignored)\n", p.Path, p.Description, marker)
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
