package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenAIGenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"{\"cover_letter\":\"hi\"}"}}]}`))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL
	svc := newOpenAIService(cfg, "test-model", zap.NewNop())

	text, err := svc.GenerateText(context.Background(), "write")
	require.NoError(t, err)
	assert.Equal(t, `{"cover_letter":"hi"}`, text)
	assert.Equal(t, "openai", svc.Name())
}

func TestOpenAIGenerateText_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL
	svc := newOpenAIService(cfg, "test-model", zap.NewNop())

	_, err := svc.GenerateText(context.Background(), " ")
	assert.Error(t, err)

	_, err = svc.GenerateText(context.Background(), "write")
	assert.ErrorContains(t, err, "no response")
}
