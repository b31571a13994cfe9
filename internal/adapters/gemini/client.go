// Package gemini implements the assistant client port against the
// Google Generative Language REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/altigreen/internal/ports/secondary"
)

const (
	// ModelName is the generative model used for all assistant operations.
	ModelName = "gemini-2.5-flash"

	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultTimeout = 30 * time.Second
)

const chatSystemInstruction = `You are "AltekBot", a specialized Maintenance Support AI for Altek Green.
Your Role: Assist technicians and supervisors with advanced mining equipment maintenance, asset tracking, and safety protocols.

Knowledge Base:
- Altek Green Mining Systems (Titan Excavators, Haul Trucks, Drill Rigs, Conveyor Systems).
- Safety: Mine safety regulations (MSHA/DGMS), high voltage safety for electric mining gear, lockout/tagout procedures.
- Protocol: Geo-fencing rules (restricted mining zones, blasting zones).

Tone: Technical, safety-first, concise.
If a technician asks about bypassing a geofence, strictly remind them of the compliance policy described in the "Altek Safety" protocol.`

// Client talks to the Generative Language API over HTTP.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// ===========================================================================
// Wire types
// ===========================================================================

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// ===========================================================================
// Operations
// ===========================================================================

// ChatReply sends the conversation history plus a new user message and
// returns the model's reply.
func (c *Client) ChatReply(ctx context.Context, history []secondary.ChatTurn, message string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, content{Role: turn.Role, Parts: []part{{Text: turn.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	req := &generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: chatSystemInstruction}}},
	}
	reply, err := c.generateText(ctx, req)
	if err != nil {
		return "", err
	}
	if reply == "" {
		return "System anomaly. Please retry.", nil
	}
	return reply, nil
}

// FleetInsights asks for a structured fleet status report over the serialized
// work order data.
func (c *Client) FleetInsights(ctx context.Context, workOrdersJSON []byte) (*secondary.FleetReportPayload, error) {
	schema := json.RawMessage(`{
		"type": "OBJECT",
		"properties": {
			"summary": {"type": "STRING", "description": "Executive summary of fleet maintenance status for mining operations"},
			"criticalIssues": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "List of high priority risks based on the work orders"},
			"efficiencyScore": {"type": "NUMBER", "description": "A score from 0-100 on maintenance efficiency"},
			"recommendations": {"type": "STRING", "description": "Actionable advice for the supervisor"}
		},
		"required": ["summary", "criticalIssues", "efficiencyScore", "recommendations"]
	}`)

	prompt := fmt.Sprintf(`Analyze the following active work orders for the Altek Green Mining Maintenance System.
Provide a status report for the Site Supervisor.

Work Order Data:
%s

Focus on:
1. Overdue or Critical items affecting production.
2. Bottlenecks in specific asset categories (Excavators, Haulers).
3. Safety risks in the mining environment.`, workOrdersJSON)

	var report secondary.FleetReportPayload
	if err := c.generateJSON(ctx, prompt, schema, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// EcoSavings asks for a structured diesel-to-electric ROI estimate.
func (c *Client) EcoSavings(ctx context.Context, dailyUsage, fuelPrice, electricityPrice float64) (*secondary.EcoSavingsPayload, error) {
	schema := json.RawMessage(`{
		"type": "OBJECT",
		"properties": {
			"yearlySavings": {"type": "NUMBER"},
			"monthlySavings": {"type": "NUMBER"},
			"paybackPeriodMonths": {"type": "NUMBER"},
			"co2Saved": {"type": "NUMBER"},
			"advice": {"type": "STRING"}
		},
		"required": ["yearlySavings", "monthlySavings", "paybackPeriodMonths", "co2Saved", "advice"]
	}`)

	prompt := fmt.Sprintf(`Calculate ROI for switching from Diesel Mining Equipment to Altek Green Electric Mining Systems.

Inputs:
- Daily Usage: %g km equivalent (or hours)
- Diesel Cost: %g per liter
- Electricity Cost: %g per unit

Assumptions:
- Diesel Efficiency: Moderate for heavy machinery
- EV Efficiency: High for electric drive systems
- Work Days: 300 days/year
- Vehicle Cost Difference: 150,000 currency units
- Diesel CO2: High emission factor
- EV CO2: Low emission factor

Task:
1. Calculate savings based on the inputs and assumptions.
2. Provide a short, persuasive business advice string summarizing the benefit for a mining operation.`,
		dailyUsage, fuelPrice, electricityPrice)

	var savings secondary.EcoSavingsPayload
	if err := c.generateJSON(ctx, prompt, schema, &savings); err != nil {
		return nil, err
	}
	return &savings, nil
}

// SuggestChecklist asks for 3-6 maintenance steps for an asset and task.
func (c *Client) SuggestChecklist(ctx context.Context, assetName, description string) ([]string, error) {
	schema := json.RawMessage(`{
		"type": "OBJECT",
		"properties": {
			"steps": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "A list of 3-6 technical maintenance steps"}
		},
		"required": ["steps"]
	}`)

	prompt := fmt.Sprintf(`Create a technical maintenance checklist for the following task:
Asset: %s
Issue/Task: %s

Requirements:
- Provide 3 to 6 concise, actionable steps.
- Focus on safety and correct procedure for heavy mining equipment.
- First step should always be safety related (e.g. Lockout/Tagout, Wheel chocks).`,
		assetName, description)

	var payload struct {
		Steps []string `json:"steps"`
	}
	if err := c.generateJSON(ctx, prompt, schema, &payload); err != nil {
		return nil, err
	}
	return payload.Steps, nil
}

// EnhanceDescription rewrites a rough issue description into a professional
// work order description.
func (c *Client) EnhanceDescription(ctx context.Context, text, assetType string) (string, error) {
	prompt := fmt.Sprintf(`You are a technical mining fleet supervisor.
Rewrite the following rough maintenance issue description into a professional, technical, and concise work order description for advanced mining equipment.

Asset Type: %s
User Input: "%s"

Output: Just the rewritten text. No quotes.`, assetType, text)

	req := &generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	reply, err := c.generateText(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// AnalyzeImage describes visible wear or damage in an equipment photo.
func (c *Client) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	prompt := "Analyze this image of a mining equipment component. Describe the visible wear, damage, or anomaly in technical terms suitable for a maintenance work order description. Keep it under 20 words."

	req := &generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
				{Text: prompt},
			},
		}},
	}
	reply, err := c.generateText(ctx, req)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "Visual anomaly detected. Manual inspection required.", nil
	}
	return reply, nil
}

// ===========================================================================
// HTTP plumbing
// ===========================================================================

func (c *Client) generateJSON(ctx context.Context, prompt string, schema json.RawMessage, out any) error {
	req := &generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	}
	reply, err := c.generateText(ctx, req)
	if err != nil {
		return err
	}
	if reply == "" {
		return fmt.Errorf("no data returned")
	}
	if err := json.Unmarshal([]byte(reply), out); err != nil {
		return fmt.Errorf("failed to decode structured response: %w", err)
	}
	return nil
}

func (c *Client) generateText(ctx context.Context, genReq *generateRequest) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	body, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, ModelName)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to reach assistant: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(genResp.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// Ensure Client implements the interface
var _ secondary.AssistantClient = (*Client)(nil)
