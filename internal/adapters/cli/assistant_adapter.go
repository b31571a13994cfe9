package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/altigreen/internal/ports/primary"
)

// AssistantAdapter translates CLI operations to AssistantService calls.
type AssistantAdapter struct {
	service primary.AssistantService
	out     io.Writer
}

// NewAssistantAdapter creates a new AssistantAdapter with the given service.
func NewAssistantAdapter(service primary.AssistantService, out io.Writer) *AssistantAdapter {
	return &AssistantAdapter{
		service: service,
		out:     out,
	}
}

// Chat sends a message and prints the reply.
func (a *AssistantAdapter) Chat(ctx context.Context, message string) error {
	reply, err := a.service.Chat(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to chat: %w", err)
	}

	fmt.Fprintf(a.out, "%s %s\n", color.New(color.FgHiCyan).Sprint("AltekBot:"), reply)
	return nil
}

// History prints the persisted conversation.
func (a *AssistantAdapter) History(ctx context.Context) error {
	messages, err := a.service.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to load chat history: %w", err)
	}

	if len(messages) == 0 {
		fmt.Fprintln(a.out, "No conversation yet")
		return nil
	}

	for _, msg := range messages {
		speaker := "You:     "
		if msg.Role == "model" {
			speaker = color.New(color.FgHiCyan).Sprint("AltekBot:")
		}
		fmt.Fprintf(a.out, "%s %s\n", speaker, msg.Text)
	}

	return nil
}

// Insights prints the structured fleet maintenance report.
func (a *AssistantAdapter) Insights(ctx context.Context) error {
	report, err := a.service.FleetInsights(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate insights: %w", err)
	}

	fmt.Fprintf(a.out, "\nFleet Maintenance Report\n")
	fmt.Fprintln(a.out, "────────────────────────────────────────")
	fmt.Fprintf(a.out, "Summary: %s\n", report.Summary)
	fmt.Fprintf(a.out, "Efficiency score: %.0f/100\n", report.EfficiencyScore)
	if len(report.CriticalIssues) > 0 {
		fmt.Fprintln(a.out, "Critical issues:")
		for _, issue := range report.CriticalIssues {
			fmt.Fprintf(a.out, "  %s %s\n", color.New(color.FgRed).Sprint("!"), issue)
		}
	}
	fmt.Fprintf(a.out, "Recommendations: %s\n\n", report.Recommendations)

	return nil
}

// Roi prints the diesel-to-electric savings estimate.
func (a *AssistantAdapter) Roi(ctx context.Context, req primary.EcoSavingsRequest) error {
	savings, err := a.service.EcoSavings(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to calculate savings: %w", err)
	}

	fmt.Fprintf(a.out, "\nElectrification ROI Estimate\n")
	fmt.Fprintln(a.out, "────────────────────────────────────────")
	fmt.Fprintf(a.out, "Yearly savings:   %.0f\n", savings.YearlySavings)
	fmt.Fprintf(a.out, "Monthly savings:  %.0f\n", savings.MonthlySavings)
	fmt.Fprintf(a.out, "Payback period:   %.0f months\n", savings.PaybackPeriodMonths)
	fmt.Fprintf(a.out, "CO2 saved:        %.0f kg/year\n", savings.CO2Saved)
	fmt.Fprintf(a.out, "\n%s\n\n", savings.Advice)

	return nil
}

// SuggestChecklist prints proposed maintenance steps for a task.
func (a *AssistantAdapter) SuggestChecklist(ctx context.Context, assetName, description string) error {
	steps, err := a.service.SuggestChecklist(ctx, assetName, description)
	if err != nil {
		return fmt.Errorf("failed to suggest checklist: %w", err)
	}

	fmt.Fprintf(a.out, "Suggested checklist for %s:\n", assetName)
	for i, step := range steps {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, step)
	}

	return nil
}

// Enhance rewrites a rough description and prints the result.
func (a *AssistantAdapter) Enhance(ctx context.Context, text, assetType string) error {
	enhanced, err := a.service.EnhanceDescription(ctx, text, assetType)
	if err != nil {
		return fmt.Errorf("failed to enhance description: %w", err)
	}

	fmt.Fprintln(a.out, enhanced)
	return nil
}

// AnalyzeImage describes an equipment photo and prints the result.
func (a *AssistantAdapter) AnalyzeImage(ctx context.Context, image []byte, mimeType string) error {
	description, err := a.service.AnalyzeImage(ctx, image, mimeType)
	if err != nil {
		return fmt.Errorf("failed to analyze image: %w", err)
	}

	fmt.Fprintln(a.out, description)
	return nil
}
