package app

import (
	"context"
	"encoding/json"
	"math"

	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/ports/secondary"
)

// Fallback values returned when the generative collaborator is unreachable
// or replies with something unusable. External failures never propagate past
// this service; degraded content is the only user-visible symptom.
const (
	fallbackChatReply   = "Connection to Maintenance Server failed. Offline protocols in effect."
	fallbackImageReport = "Image analysis failed. Please enter description manually."
)

// Eco savings fallback model: fixed efficiency, price and emission constants
// for the local deterministic estimate.
const (
	workDaysPerYear    = 300
	dieselKmPerLiter   = 20
	electricKmPerUnit  = 10
	capitalCostDelta   = 150000
	dieselCO2PerLiter  = 2.6
	electricCO2PerUnit = 0.8
	fallbackEcoAdvice  = "Switching to Altek electric systems offers significant savings."
)

func fallbackChecklist() []string {
	return []string{"Ensure safety protocols", "Inspect area", "Resolve issue", "Log completion"}
}

func fallbackFleetReport() *primary.FleetReport {
	return &primary.FleetReport{
		Summary:         "Unable to generate AI report due to connectivity.",
		CriticalIssues:  []string{"Check Network Connection"},
		EfficiencyScore: 0,
		Recommendations: "Proceed with manual checks.",
	}
}

// AssistantServiceImpl implements the AssistantService interface. It wraps
// the raw assistant client with the fallback policy and persists the chat
// history so conversations span invocations.
type AssistantServiceImpl struct {
	client    secondary.AssistantClient
	snapshots secondary.SnapshotStore
	orders    primary.WorkOrderService
}

// NewAssistantService creates a new AssistantService with injected dependencies.
func NewAssistantService(client secondary.AssistantClient, snapshots secondary.SnapshotStore, orders primary.WorkOrderService) *AssistantServiceImpl {
	return &AssistantServiceImpl{
		client:    client,
		snapshots: snapshots,
		orders:    orders,
	}
}

// Chat sends a message with the persisted history as context and records
// both turns. A failed collaborator call resolves to the fixed offline reply.
func (s *AssistantServiceImpl) Chat(ctx context.Context, message string) (string, error) {
	history := s.loadHistory(ctx)

	turns := make([]secondary.ChatTurn, len(history))
	for i, m := range history {
		turns[i] = secondary.ChatTurn{Role: m.Role, Text: m.Text}
	}

	reply, err := s.client.ChatReply(ctx, turns, message)
	if err != nil || reply == "" {
		reply = fallbackChatReply
	}

	history = append(history,
		secondary.ChatMessageRecord{Role: "user", Text: message},
		secondary.ChatMessageRecord{Role: "model", Text: reply},
	)
	if err := s.saveHistory(ctx, history); err != nil {
		return "", err
	}

	return reply, nil
}

// History returns the persisted conversation turns in order.
func (s *AssistantServiceImpl) History(ctx context.Context) ([]primary.ChatMessage, error) {
	records := s.loadHistory(ctx)
	messages := make([]primary.ChatMessage, len(records))
	for i, r := range records {
		messages[i] = primary.ChatMessage{Role: r.Role, Text: r.Text}
	}
	return messages, nil
}

// FleetInsights derives a structured report from the current work order
// sequence, falling back to the fixed offline report on failure.
func (s *AssistantServiceImpl) FleetInsights(ctx context.Context) (*primary.FleetReport, error) {
	orders, err := s.orders.ListWorkOrders(ctx, primary.WorkOrderFilters{})
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return nil, err
	}

	payload, err := s.client.FleetInsights(ctx, data)
	if err != nil || payload == nil {
		return fallbackFleetReport(), nil
	}

	return &primary.FleetReport{
		Summary:         payload.Summary,
		CriticalIssues:  payload.CriticalIssues,
		EfficiencyScore: payload.EfficiencyScore,
		Recommendations: payload.Recommendations,
	}, nil
}

// EcoSavings estimates diesel-to-electric ROI. When the collaborator fails,
// the local deterministic model takes over: diesel cost basis
// usage/20 * fuelPrice * 300 days against electric usage/10 * elecPrice * 300,
// payback from the fixed capital delta, CO2 from per-unit emission factors.
func (s *AssistantServiceImpl) EcoSavings(ctx context.Context, req primary.EcoSavingsRequest) (*primary.EcoSavings, error) {
	payload, err := s.client.EcoSavings(ctx, req.DailyUsage, req.FuelPrice, req.ElectricityPrice)
	if err == nil && payload != nil {
		return &primary.EcoSavings{
			YearlySavings:       payload.YearlySavings,
			MonthlySavings:      payload.MonthlySavings,
			PaybackPeriodMonths: payload.PaybackPeriodMonths,
			CO2Saved:            payload.CO2Saved,
			Advice:              payload.Advice,
		}, nil
	}

	dieselCost := req.DailyUsage / dieselKmPerLiter * req.FuelPrice * workDaysPerYear
	electricCost := req.DailyUsage / electricKmPerUnit * req.ElectricityPrice * workDaysPerYear
	yearly := dieselCost - electricCost
	monthly := yearly / 12

	payback := 0.0
	if monthly != 0 {
		payback = math.Round(capitalCostDelta / monthly)
	}

	co2 := (req.DailyUsage / dieselKmPerLiter * dieselCO2PerLiter * workDaysPerYear) -
		(req.DailyUsage / electricKmPerUnit * electricCO2PerUnit * workDaysPerYear)

	return &primary.EcoSavings{
		YearlySavings:       math.Round(yearly),
		MonthlySavings:      math.Round(monthly),
		PaybackPeriodMonths: payback,
		CO2Saved:            math.Round(co2),
		Advice:              fallbackEcoAdvice,
	}, nil
}

// SuggestChecklist proposes 3-6 maintenance steps, first one safety-related.
// Failure or an empty proposal resolves to the fixed 4-step fallback.
func (s *AssistantServiceImpl) SuggestChecklist(ctx context.Context, assetName, description string) ([]string, error) {
	steps, err := s.client.SuggestChecklist(ctx, assetName, description)
	if err != nil || len(steps) == 0 {
		return fallbackChecklist(), nil
	}
	return steps, nil
}

// EnhanceDescription rewrites a rough issue description. On failure the
// input comes back unchanged.
func (s *AssistantServiceImpl) EnhanceDescription(ctx context.Context, text, assetType string) (string, error) {
	enhanced, err := s.client.EnhanceDescription(ctx, text, assetType)
	if err != nil || enhanced == "" {
		return text, nil
	}
	return enhanced, nil
}

// AnalyzeImage describes visible wear or damage on an equipment photo,
// falling back to the fixed manual-entry prompt.
func (s *AssistantServiceImpl) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	report, err := s.client.AnalyzeImage(ctx, image, mimeType)
	if err != nil || report == "" {
		return fallbackImageReport, nil
	}
	return report, nil
}

// loadHistory reads the persisted conversation; absent or corrupt history is
// an empty conversation.
func (s *AssistantServiceImpl) loadHistory(ctx context.Context) []secondary.ChatMessageRecord {
	data, err := s.snapshots.Get(ctx, secondary.SnapshotChatHistory)
	if err != nil {
		return nil
	}
	var history []secondary.ChatMessageRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil
	}
	return history
}

func (s *AssistantServiceImpl) saveHistory(ctx context.Context, history []secondary.ChatMessageRecord) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.snapshots.Put(ctx, secondary.SnapshotChatHistory, data)
}

// Ensure AssistantServiceImpl implements the interface
var _ primary.AssistantService = (*AssistantServiceImpl)(nil)
