package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/wire"
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Manage simulated connectivity",
	Long:  "Flip the connectivity flag the sync coordinator reacts to.\nGoing offline queues changes locally; coming back online syncs them.",
}

var netOnlineCmd = &cobra.Command{
	Use:   "online",
	Short: "Mark the device online",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := wire.SyncAdapter().SetOnline(ctx, true); err != nil {
			return err
		}
		// Coming online may trigger a deferred sync; let it finish
		return wire.SyncService().AwaitIdle(ctx)
	},
}

var netOfflineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Mark the device offline",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SyncAdapter().SetOnline(cmd.Context(), false)
	},
}

var netStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connectivity and sync state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SyncAdapter().Status(cmd.Context())
	},
}

// NetCmd returns the net command
func NetCmd() *cobra.Command {
	netCmd.AddCommand(netOnlineCmd)
	netCmd.AddCommand(netOfflineCmd)
	netCmd.AddCommand(netStatusCmd)
	return netCmd
}
