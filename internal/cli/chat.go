package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/wire"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the maintenance support assistant",
	Long:  "Sends a message to AltekBot. The conversation persists across\ninvocations; run without arguments to review it.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return wire.AssistantAdapter().History(cmd.Context())
		}
		return wire.AssistantAdapter().Chat(cmd.Context(), args[0])
	},
}

// ChatCmd returns the chat command
func ChatCmd() *cobra.Command {
	return chatCmd
}
