package secondary

import "context"

// ChatTurn is one prior conversation turn sent to the assistant.
type ChatTurn struct {
	Role string // "user" or "model"
	Text string
}

// FleetReportPayload is the structured insights response from the assistant.
type FleetReportPayload struct {
	Summary         string   `json:"summary"`
	CriticalIssues  []string `json:"criticalIssues"`
	EfficiencyScore float64  `json:"efficiencyScore"`
	Recommendations string   `json:"recommendations"`
}

// EcoSavingsPayload is the structured ROI response from the assistant.
type EcoSavingsPayload struct {
	YearlySavings       float64 `json:"yearlySavings"`
	MonthlySavings      float64 `json:"monthlySavings"`
	PaybackPeriodMonths float64 `json:"paybackPeriodMonths"`
	CO2Saved            float64 `json:"co2Saved"`
	Advice              string  `json:"advice"`
}

// AssistantClient is the raw capability interface to the generative AI
// collaborator. Every method may fail; the application layer resolves
// failures to documented fallback values.
type AssistantClient interface {
	// ChatReply returns a conversational reply given prior turns and a new
	// user message.
	ChatReply(ctx context.Context, history []ChatTurn, message string) (string, error)

	// FleetInsights derives a structured report from the serialized work
	// order data.
	FleetInsights(ctx context.Context, workOrdersJSON []byte) (*FleetReportPayload, error)

	// EcoSavings estimates diesel-to-electric ROI for the given inputs.
	EcoSavings(ctx context.Context, dailyUsage, fuelPrice, electricityPrice float64) (*EcoSavingsPayload, error)

	// SuggestChecklist proposes 3-6 maintenance steps for an asset and task.
	SuggestChecklist(ctx context.Context, assetName, description string) ([]string, error)

	// EnhanceDescription rewrites a rough issue description.
	EnhanceDescription(ctx context.Context, text, assetType string) (string, error)

	// AnalyzeImage describes visible wear or damage in an equipment photo.
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (string, error)
}
