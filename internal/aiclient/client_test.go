package aiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"evtele/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Recommend(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotReq RecommendationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"recommendations": {"Evening News", "Morning Concert"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key")

	recs, err := client.Recommend(context.Background(), RecommendationRequest{
		ViewingHistory: []string{"Evening News"},
		Interests:      []string{"music"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Evening News", "Morning Concert"}, recs)
	assert.Equal(t, "/v1/recommendations", gotPath)
	assert.Equal(t, defaultNumRecommendations, gotReq.NumRecommendations, "count defaults to 5")
}

func TestClient_Recommend_RequiresHistory(t *testing.T) {
	t.Parallel()

	client := New("http://localhost:1", "")

	_, err := client.Recommend(context.Background(), RecommendationRequest{})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestClient_Summarize(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/summaries", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"summary": "A short recap."})
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key")

	summary, err := client.Summarize(context.Background(), SummaryRequest{
		Title:       "Evening News",
		Description: "The day's events in one hour.",
	})
	require.NoError(t, err)
	assert.Equal(t, "A short recap.", summary)
}

func TestClient_ServiceErrorSurfacesStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := New(srv.URL, "")

	_, err := client.Summarize(context.Background(), SummaryRequest{Title: "T", Description: "D"})
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Contains(t, apiErr.Message, "model overloaded")
}

func TestClient_UnconfiguredBaseURL(t *testing.T) {
	t.Parallel()

	client := New("", "")

	_, err := client.Summarize(context.Background(), SummaryRequest{Title: "T", Description: "D"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}
