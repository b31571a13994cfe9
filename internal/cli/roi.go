package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/wire"
)

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Estimate diesel-to-electric savings",
	Long:  "Calculates the ROI of switching a diesel machine to an electric one.\nFalls back to a local formula when the assistant is unreachable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		usage, _ := cmd.Flags().GetFloat64("usage")
		fuel, _ := cmd.Flags().GetFloat64("fuel")
		electricity, _ := cmd.Flags().GetFloat64("electricity")

		return wire.AssistantAdapter().Roi(cmd.Context(), primary.EcoSavingsRequest{
			DailyUsage:       usage,
			FuelPrice:        fuel,
			ElectricityPrice: electricity,
		})
	},
}

// RoiCmd returns the roi command
func RoiCmd() *cobra.Command {
	roiCmd.Flags().Float64P("usage", "u", 100, "Daily usage in km equivalent (or hours)")
	roiCmd.Flags().Float64P("fuel", "f", 100, "Diesel cost per liter")
	roiCmd.Flags().Float64P("electricity", "e", 10, "Electricity cost per unit")
	return roiCmd
}
