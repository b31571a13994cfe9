package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/altigreen/internal/ports/primary"
)

// ScannerAdapter translates CLI operations to ScannerService calls.
type ScannerAdapter struct {
	service primary.ScannerService
	out     io.Writer
}

// NewScannerAdapter creates a new ScannerAdapter with the given service.
func NewScannerAdapter(service primary.ScannerService, out io.Writer) *ScannerAdapter {
	return &ScannerAdapter{
		service: service,
		out:     out,
	}
}

// Scan verifies an asset QR payload and prints its maintenance record.
func (a *ScannerAdapter) Scan(ctx context.Context, assetID string, distanceMeters float64) error {
	result, err := a.service.Scan(ctx, primary.ScanRequest{
		AssetID:        assetID,
		DistanceMeters: distanceMeters,
	})
	if err != nil {
		return err
	}

	asset := result.Asset
	fmt.Fprintf(a.out, "✓ Scan verified inside geofence (%.0fm)\n", distanceMeters)
	fmt.Fprintf(a.out, "\nAsset:    %s\n", asset.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", asset.Name)
	fmt.Fprintf(a.out, "Category: %s\n", asset.Category)
	fmt.Fprintf(a.out, "Site:     %s\n", asset.SiteID)
	fmt.Fprintf(a.out, "Status:   %s\n", assetStatusBadge(asset.Status))
	if asset.LastMaintenance != "" {
		fmt.Fprintf(a.out, "Last maintenance: %s\n", asset.LastMaintenance)
	}

	if len(result.History) > 0 {
		fmt.Fprintln(a.out, "\nMaintenance history:")
		for _, entry := range result.History {
			fmt.Fprintf(a.out, "  %s  %-26s %-12s %s\n", entry.Date, entry.Action, entry.Technician, entry.Status)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

func assetStatusBadge(status string) string {
	switch status {
	case "Operational":
		return color.New(color.FgHiGreen).Sprint(status)
	case "Down":
		return color.New(color.FgRed).Sprint(status)
	case "Maintenance Required":
		return color.New(color.FgYellow).Sprint(status)
	default:
		return status
	}
}
