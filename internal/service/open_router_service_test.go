package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestOpenRouter(url string) *OpenRouterService {
	return &OpenRouterService{
		APIKey: "test-key",
		Model:  "test-model",
		URL:    url,
		client: resty.New(),
		log:    zap.NewNop(),
	}
}

func TestOpenRouterGenerateText(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"tailored_summary\":\"ok\"}"}}]}`))
	}))
	defer srv.Close()

	text, err := newTestOpenRouter(srv.URL).GenerateText(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `{"tailored_summary":"ok"}`, text)
	assert.Equal(t, "test-model", got["model"])
}

func TestOpenRouterGenerateText_Errors(t *testing.T) {
	t.Run("empty prompt", func(t *testing.T) {
		_, err := newTestOpenRouter("http://127.0.0.1:0").GenerateText(context.Background(), "  ")
		assert.Error(t, err)
	})

	t.Run("error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()
		_, err := newTestOpenRouter(srv.URL).GenerateText(context.Background(), "hello")
		assert.ErrorContains(t, err, "401")
	})

	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()
		_, err := newTestOpenRouter(srv.URL).GenerateText(context.Background(), "hello")
		assert.ErrorContains(t, err, "no response")
	})
}
