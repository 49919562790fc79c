// Package aiclient is an HTTP client for the hosted text-generation service
// that backs program summaries and viewing recommendations.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"evtele/internal/models"
	"evtele/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultTimeout            = 15 * time.Second
	defaultNumRecommendations = 5
	maxNumRecommendations     = 20
)

// Client talks to the text-generation service over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// APIError is returned when the service answers with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ai service error (status %d): %s", e.Status, e.Message)
}

// New creates a Client for the given base URL. An empty base URL yields a
// client whose calls fail with a clear error, so callers can wire it
// unconditionally and gate usage with a feature flag.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// RecommendationRequest asks for program titles matching a viewer's history
// and interests.
type RecommendationRequest struct {
	ViewingHistory     []string `json:"viewing_history"`
	Interests          []string `json:"interests"`
	NumRecommendations int      `json:"num_recommendations"`
}

type recommendationResponse struct {
	Recommendations []string `json:"recommendations"`
}

// SummaryRequest asks for a short summary of one program.
type SummaryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// Recommend returns recommended program titles. NumRecommendations defaults
// to 5 and is capped at 20.
func (c *Client) Recommend(ctx context.Context, req RecommendationRequest) ([]string, error) {
	if len(req.ViewingHistory) == 0 {
		return nil, models.NewValidationError("Viewing history is required")
	}
	if req.NumRecommendations <= 0 {
		req.NumRecommendations = defaultNumRecommendations
	}
	if req.NumRecommendations > maxNumRecommendations {
		req.NumRecommendations = maxNumRecommendations
	}

	var resp recommendationResponse
	if err := c.do(ctx, "recommendations", "/v1/recommendations", req, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

// Summarize returns a short neutral summary for a program.
func (c *Client) Summarize(ctx context.Context, req SummaryRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return "", models.NewValidationError("Description is required")
	}

	var resp summaryResponse
	if err := c.do(ctx, "summary", "/v1/summaries", req, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

func (c *Client) do(ctx context.Context, operation, path string, payload, dest interface{}) error {
	if c.baseURL == "" {
		return models.NewInternalError(fmt.Errorf("ai service is not configured"))
	}

	span, ctx := observability.NewSpan(ctx, "aiclient."+operation)
	defer span.End()
	span.AddAttributes(attribute.String("ai.operation", operation))

	start := time.Now()
	status := "error"
	defer func() {
		observability.AIRequestLatency.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return models.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return models.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetError(err)
		return models.NewInternalError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		span.SetError(apiErr)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		span.SetError(err)
		return models.NewInternalError(fmt.Errorf("decode ai response: %w", err))
	}

	status = "ok"
	return nil
}
