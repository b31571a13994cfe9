package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/wire"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Show sync state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SyncAdapter().Status(cmd.Context())
	},
}

var syncWaitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Block until in-flight changes have synced",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SyncService().AwaitIdle(cmd.Context())
	},
}

// SyncCmd returns the sync command
func SyncCmd() *cobra.Command {
	syncCmd.AddCommand(syncWaitCmd)
	return syncCmd
}
