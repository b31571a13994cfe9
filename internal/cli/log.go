package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/wire"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the mutation audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return wire.AuditAdapter().List(cmd.Context(), limit)
	},
}

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	logCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show")
	return logCmd
}
