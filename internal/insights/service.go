package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

	fallbackNoKey = "API key is missing. Please configure GEMINI_API_KEY."
	fallbackError = "Unable to generate insights due to an API error."
	fallbackEmpty = "No insights available at this time."
)

// Service turns the order ledger into a short business summary via an
// external text-generation call. It fails closed: every error path
// returns a fixed human-readable string, never an error.
type Service struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewService(apiKey string) *Service {
	return &Service{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *Service) Summarize(ctx context.Context, orders []models.Order) string {
	if s.apiKey == "" {
		return fallbackNoKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(orders)}}}},
	})
	if err != nil {
		return fallbackError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fallbackError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[WARN] insights request failed: %v", err)
		return fallbackError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] insights request returned status %d", resp.StatusCode)
		return fallbackError
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fallbackError
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return fallbackError
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return fallbackEmpty
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return fallbackEmpty
	}
	return text
}

func buildPrompt(orders []models.Order) string {
	sum := pos.SummarizeSales(orders, 5)

	top := make([]string, len(sum.TopItems))
	for i, it := range sum.TopItems {
		top[i] = fmt.Sprintf("%s (%d)", it.Name, it.Quantity)
	}

	return fmt.Sprintf(`You are a restaurant consultant. Analyze the following sales snapshot:
- Total Revenue: $%.2f
- Total Orders: %d
- Top Selling Items: %s

Provide 3 brief, actionable strategic insights to improve revenue or operations.
Format as a clean list. Keep it under 100 words.`,
		sum.Revenue, sum.OrderCount, strings.Join(top, ", "))
}
