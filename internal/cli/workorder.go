package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/config"
	"github.com/example/altigreen/internal/ctxutil"
	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/wire"
)

var workOrderCmd = &cobra.Command{
	Use:     "work-order",
	Aliases: []string{"wo"},
	Short:   "Manage maintenance work orders",
	Long:    "Create, list, and update work orders for the equipment fleet",
}

var workOrderCreateCmd = &cobra.Command{
	Use:   "create [description]",
	Short: "Create a new work order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg, err := currentSession(); err == nil && !config.CanCreateWorkOrders(cfg.Role) {
			return fmt.Errorf("technicians cannot create work orders - ask a supervisor")
		}

		description := ""
		if len(args) > 0 {
			description = args[0]
		}
		assetID, _ := cmd.Flags().GetString("asset-id")
		assetName, _ := cmd.Flags().GetString("asset-name")
		woType, _ := cmd.Flags().GetString("type")
		priority, _ := cmd.Flags().GetString("priority")
		assigned, _ := cmd.Flags().GetString("assigned")
		due, _ := cmd.Flags().GetString("due")
		location, _ := cmd.Flags().GetString("location")
		checklist, _ := cmd.Flags().GetStringArray("check")
		enhance, _ := cmd.Flags().GetBool("enhance")
		suggest, _ := cmd.Flags().GetBool("suggest-checklist")

		ctx := actorContext()

		if enhance && description != "" {
			enhanced, err := wire.AssistantService().EnhanceDescription(ctx, description, assetName)
			if err == nil {
				description = enhanced
			}
		}
		if suggest && len(checklist) == 0 {
			steps, err := wire.AssistantService().SuggestChecklist(ctx, assetName, description)
			if err == nil {
				checklist = steps
			}
		}

		err := wire.WorkOrderAdapter().Create(ctx, primary.CreateWorkOrderRequest{
			AssetID:     assetID,
			AssetName:   assetName,
			Type:        woType,
			Description: description,
			Priority:    priority,
			AssignedTo:  assigned,
			DueDate:     due,
			Location:    location,
			Checklist:   checklist,
		})
		if err != nil {
			return err
		}

		return awaitSync(ctx)
	},
}

var workOrderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		return wire.WorkOrderAdapter().List(cmd.Context(), status)
	},
}

var workOrderShowCmd = &cobra.Command{
	Use:   "show [work-order-id]",
	Short: "Show work order details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkOrderAdapter().Show(cmd.Context(), args[0])
	},
}

var workOrderStatusCmd = &cobra.Command{
	Use:   "status [work-order-id] [status]",
	Short: "Change a work order's status",
	Long:  "Set status to Pending, In Progress, Completed or Flagged.\nAny transition is allowed.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := actorContext()
		if err := wire.WorkOrderAdapter().SetStatus(ctx, args[0], args[1]); err != nil {
			return err
		}
		return awaitSync(ctx)
	},
}

var workOrderCheckCmd = &cobra.Command{
	Use:   "check [work-order-id] [item-id]",
	Short: "Toggle a checklist item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := actorContext()
		if err := wire.WorkOrderAdapter().ToggleItem(ctx, args[0], args[1]); err != nil {
			return err
		}
		return awaitSync(ctx)
	},
}

var workOrderSuggestCmd = &cobra.Command{
	Use:   "suggest [asset-name] [description]",
	Short: "Suggest maintenance checklist steps for a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AssistantAdapter().SuggestChecklist(cmd.Context(), args[0], args[1])
	},
}

var workOrderEnhanceCmd = &cobra.Command{
	Use:   "enhance [description]",
	Short: "Rewrite a rough issue description into work order prose",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assetType, _ := cmd.Flags().GetString("asset-type")
		return wire.AssistantAdapter().Enhance(cmd.Context(), args[0], assetType)
	},
}

var workOrderAnalyzeImageCmd = &cobra.Command{
	Use:   "analyze-image [file]",
	Short: "Describe equipment damage from a photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mimeType, _ := cmd.Flags().GetString("mime-type")
		image, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		return wire.AssistantAdapter().AnalyzeImage(cmd.Context(), image, mimeType)
	},
}

// actorContext returns a context carrying the logged-in user's name, so the
// audit trail and scan history record who acted.
func actorContext() context.Context {
	ctx := context.Background()
	if cfg, err := currentSession(); err == nil && cfg.Name != "" {
		ctx = ctxutil.WithActor(ctx, cfg.Name)
	}
	return ctx
}

// awaitSync blocks until the simulated cloud round trip settles, so the
// sync confirmation prints before the process exits.
func awaitSync(ctx context.Context) error {
	return wire.SyncService().AwaitIdle(ctx)
}

// WorkOrderCmd returns the work-order command
func WorkOrderCmd() *cobra.Command {
	// Add flags
	workOrderCreateCmd.Flags().String("asset-id", "", "Asset ID, e.g. AG-EXC-88")
	workOrderCreateCmd.Flags().String("asset-name", "", "Asset display name")
	workOrderCreateCmd.Flags().StringP("type", "t", "", "Work order type: Scheduled or Ad-hoc")
	workOrderCreateCmd.Flags().StringP("priority", "p", "", "Priority: Low, Medium, High or Critical")
	workOrderCreateCmd.Flags().StringP("assigned", "a", "", "Assigned technician")
	workOrderCreateCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	workOrderCreateCmd.Flags().StringP("location", "l", "", "Site location")
	workOrderCreateCmd.Flags().StringArrayP("check", "c", nil, "Checklist task (repeatable)")
	workOrderCreateCmd.Flags().Bool("enhance", false, "Rewrite the description with the assistant")
	workOrderCreateCmd.Flags().Bool("suggest-checklist", false, "Generate checklist steps with the assistant")
	workOrderListCmd.Flags().StringP("status", "s", "", "Filter by status (Pending, In Progress, Completed, Flagged)")
	workOrderEnhanceCmd.Flags().String("asset-type", "", "Asset type for context, e.g. Excavator")
	workOrderAnalyzeImageCmd.Flags().String("mime-type", "image/jpeg", "Image MIME type")

	// Add subcommands
	workOrderCmd.AddCommand(workOrderCreateCmd)
	workOrderCmd.AddCommand(workOrderListCmd)
	workOrderCmd.AddCommand(workOrderShowCmd)
	workOrderCmd.AddCommand(workOrderStatusCmd)
	workOrderCmd.AddCommand(workOrderCheckCmd)
	workOrderCmd.AddCommand(workOrderSuggestCmd)
	workOrderCmd.AddCommand(workOrderEnhanceCmd)
	workOrderCmd.AddCommand(workOrderAnalyzeImageCmd)

	return workOrderCmd
}
