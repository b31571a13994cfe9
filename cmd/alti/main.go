package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/cli"
	"github.com/example/altigreen/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "alti",
		Short:   "AltiGreen - mining fleet maintenance",
		Version: version.String(),
		Long: `AltiGreen is a CLI tool for maintaining a fleet of mining equipment.
It tracks work orders offline-first, syncing changes to the cloud when
connectivity allows, with AI assistance for reports and checklists.`,
	}

	// Session
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())

	// Fleet maintenance
	rootCmd.AddCommand(cli.WorkOrderCmd())
	rootCmd.AddCommand(cli.ScanCmd())
	rootCmd.AddCommand(cli.LogCmd())

	// Connectivity and sync
	rootCmd.AddCommand(cli.NetCmd())
	rootCmd.AddCommand(cli.SyncCmd())

	// Assistant
	rootCmd.AddCommand(cli.ChatCmd())
	rootCmd.AddCommand(cli.InsightsCmd())
	rootCmd.AddCommand(cli.RoiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
