package geminiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencyflow/agency-manager-api/internal/config"
)

func testClient(baseURL string) Client {
	return NewClient(&config.Config{
		Gemini: config.Gemini{
			BaseURL: baseURL,
			Model:   "gemini-2.5-flash",
			APIKey:  "test-key",
		},
	})
}

func TestGenerateContentSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload, "contents")
		assert.Contains(t, payload, "generationConfig")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"parts": []map[string]string{{"text": "resposta gerada"}},
					},
				},
			},
		})
	}))
	defer server.Close()

	text, err := testClient(server.URL).GenerateContent(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "resposta gerada", text)
}

func TestGenerateContentNon200ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(server.URL).GenerateContent(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestGenerateContentEmptyCandidatesReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	_, err := testClient(server.URL).GenerateContent(context.Background(), "prompt")
	assert.Error(t, err)
}
