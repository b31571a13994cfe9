package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/wire"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate a fleet maintenance report",
	Long:  "Analyzes the current work orders and prints an AI-generated status\nreport for the site supervisor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AssistantAdapter().Insights(cmd.Context())
	},
}

// InsightsCmd returns the insights command
func InsightsCmd() *cobra.Command {
	return insightsCmd
}
