package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/cv-matcher/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type OpenRouterService struct {
	APIKey string
	Model  string
	URL    string

	client *resty.Client
	log    *zap.Logger
}

// NewOpenRouterService returns nil when OPENROUTER_API_KEY is not set.
func NewOpenRouterService(log *zap.Logger) *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	if cfg.APIKey == "" {
		return nil
	}
	return &OpenRouterService{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
		URL:    cfg.URL,
		client: resty.New().
			SetTimeout(90 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(time.Second),
		log: log.Named("openrouter"),
	}
}

func (s *OpenRouterService) Name() string {
	return "openrouter"
}

func (s *OpenRouterService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": careerSystemPrompt},
				{"role": "user", "content": prompt},
			},
		}).
		Post(s.URL)
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.IsError() {
		s.log.Warn("openrouter error response", zap.Int("status", resp.StatusCode()))
		return "", fmt.Errorf("openrouter returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
