package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/ports/secondary"
)

// SyncAdapter translates CLI operations to SyncService calls.
type SyncAdapter struct {
	service primary.SyncService
	out     io.Writer
}

// NewSyncAdapter creates a new SyncAdapter with the given service.
func NewSyncAdapter(service primary.SyncService, out io.Writer) *SyncAdapter {
	return &SyncAdapter{
		service: service,
		out:     out,
	}
}

// Status prints the connectivity flag and sync state.
func (a *SyncAdapter) Status(ctx context.Context) error {
	status, err := a.service.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	connectivity := color.New(color.FgHiGreen).Sprint("online")
	if !status.Online {
		connectivity = color.New(color.FgRed).Sprint("offline")
	}
	fmt.Fprintf(a.out, "Connectivity: %s\n", connectivity)
	fmt.Fprintf(a.out, "Sync state:   %s\n", syncBadge(status.State))

	return nil
}

// SetOnline delivers a connectivity transition.
func (a *SyncAdapter) SetOnline(ctx context.Context, online bool) error {
	if err := a.service.SetOnline(ctx, online); err != nil {
		return err
	}

	if online {
		fmt.Fprintln(a.out, "✓ Connectivity restored")
	} else {
		fmt.Fprintln(a.out, "✓ Connectivity lost. Changes will queue locally")
	}
	return nil
}

func syncBadge(state string) string {
	switch state {
	case primary.SyncSynced:
		return color.New(color.FgHiGreen).Sprint(state)
	case primary.SyncPending:
		return color.New(color.FgYellow).Sprint(state)
	case primary.SyncSyncing:
		return color.New(color.FgHiBlue).Sprint(state)
	default:
		return state
	}
}

// ToastWriter renders toast notifications as colored lines on a writer.
type ToastWriter struct {
	out io.Writer
}

// NewToastWriter creates a ToastWriter printing to out.
func NewToastWriter(out io.Writer) *ToastWriter {
	return &ToastWriter{out: out}
}

// Render prints the toast message.
func (w *ToastWriter) Render(message string) {
	fmt.Fprintln(w.out, color.New(color.FgHiGreen).Sprintf("• %s", message))
}

// Clear is a no-op; printed lines cannot be withdrawn.
func (w *ToastWriter) Clear() {}

// Ensure ToastWriter implements the interface
var _ secondary.ToastSink = (*ToastWriter)(nil)
