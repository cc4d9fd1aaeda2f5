package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-matcher/internal/config"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type OpenAIService struct {
	Model string

	client *openai.Client
	log    *zap.Logger
}

// NewOpenAIService returns nil when OPENAI_API_KEY is not set.
func NewOpenAIService(log *zap.Logger) *OpenAIService {
	cfg := config.LoadOpenAIConfig()
	if cfg.APIKey == "" {
		return nil
	}
	return newOpenAIService(openai.DefaultConfig(cfg.APIKey), cfg.Model, log)
}

func newOpenAIService(clientConfig openai.ClientConfig, model string, log *zap.Logger) *OpenAIService {
	return &OpenAIService{
		Model:  model,
		client: openai.NewClientWithConfig(clientConfig),
		log:    log.Named("openai"),
	}
}

func (s *OpenAIService) Name() string {
	return "openai"
}

func (s *OpenAIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: careerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	})
	if err != nil {
		s.log.Warn("chat completion failed", zap.Error(err))
		return "", fmt.Errorf("openai request: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return resp.Choices[0].Message.Content, nil
}
