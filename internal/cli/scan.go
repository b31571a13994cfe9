package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/wire"
)

var scanCmd = &cobra.Command{
	Use:   "scan [asset-id]",
	Short: "Verify an asset QR scan inside the geofence",
	Long:  "Simulates scanning an asset's QR code at a given distance from the\nsite center. Scans beyond the 50m geofence are refused.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, _ := cmd.Flags().GetFloat64("distance")
		return wire.ScannerAdapter().Scan(actorContext(), args[0], distance)
	},
}

// ScanCmd returns the scan command
func ScanCmd() *cobra.Command {
	scanCmd.Flags().Float64P("distance", "d", 0, "Distance from site center in meters")
	return scanCmd
}
