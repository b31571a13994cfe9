package primary

import "context"

// ChatMessage is a single turn in the assistant conversation.
type ChatMessage struct {
	Role string // "user" or "model"
	Text string
}

// FleetReport is the structured maintenance insights report.
type FleetReport struct {
	Summary         string
	CriticalIssues  []string
	EfficiencyScore float64
	Recommendations string
}

// EcoSavingsRequest holds the ROI calculator inputs.
type EcoSavingsRequest struct {
	DailyUsage       float64 // km equivalent (or hours) per day
	FuelPrice        float64 // per liter
	ElectricityPrice float64 // per unit
}

// EcoSavings is the diesel-to-electric ROI estimate.
type EcoSavings struct {
	YearlySavings       float64
	MonthlySavings      float64
	PaybackPeriodMonths float64
	CO2Saved            float64
	Advice              string
}

// AssistantService is the primary port for the generative assistant.
//
// Every operation tolerates collaborator failure by resolving to a documented
// fallback value; none of them return an error to the caller for a failed
// remote call.
type AssistantService interface {
	// Chat returns a conversational reply and records both turns in the
	// persisted history.
	Chat(ctx context.Context, message string) (string, error)

	// History returns the persisted conversation turns in order.
	History(ctx context.Context) ([]ChatMessage, error)

	// FleetInsights derives a structured report from the current work order
	// sequence.
	FleetInsights(ctx context.Context) (*FleetReport, error)

	// EcoSavings estimates diesel-to-electric ROI. On collaborator failure a
	// local deterministic formula produces the result.
	EcoSavings(ctx context.Context, req EcoSavingsRequest) (*EcoSavings, error)

	// SuggestChecklist proposes 3-6 maintenance steps, the first
	// safety-related.
	SuggestChecklist(ctx context.Context, assetName, description string) ([]string, error)

	// EnhanceDescription rewrites a rough issue description into work order
	// prose. On failure the input comes back unchanged.
	EnhanceDescription(ctx context.Context, text, assetType string) (string, error)

	// AnalyzeImage describes visible wear or damage on an equipment photo.
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (string, error)
}
