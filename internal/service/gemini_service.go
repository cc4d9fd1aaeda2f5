package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/cv-matcher/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const maxEmbeddingInput = 10000

type GeminiService struct {
	Client         *genai.Client
	Model          string
	EmbedModel     string
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	RequestTimeout time.Duration

	log               *zap.Logger
	mu                sync.Mutex
	consecutiveErrors int
	circuitBreakerMax int
}

// NewGeminiService returns an error when GEMINI_API_KEY is not set.
func NewGeminiService(ctx context.Context, log *zap.Logger) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:            client,
		Model:             geminiConfig.Model,
		EmbedModel:        geminiConfig.EmbedModel,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          90 * time.Second,
		RequestTimeout:    90 * time.Second,
		log:               log.Named("gemini"),
		circuitBreakerMax: 5,
	}, nil
}

func (s *GeminiService) Name() string {
	return "gemini"
}

func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if err := s.checkCircuit(); err != nil {
		return "", err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.3)),
		ResponseMIMEType: "application/json",
	}

	var text string
	err := s.withRetry(timeoutCtx, "GenerateText", func() error {
		result, err := s.Client.Models.GenerateContent(timeoutCtx, s.Model, genai.Text(prompt), genConfig)
		if err != nil {
			return err
		}
		if err := validateGenerateResponse(result); err != nil {
			return &invalidResponseError{err}
		}
		text = result.Text()
		return nil
	})
	return text, err
}

func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}
	if len(trimmedText) > maxEmbeddingInput {
		s.log.Warn("embedding input truncated", zap.Int("length", len(trimmedText)))
		trimmedText = trimmedText[:maxEmbeddingInput]
	}
	if err := s.checkCircuit(); err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}

	var embedding []float32
	err := s.withRetry(timeoutCtx, "GenerateEmbedding", func() error {
		result, err := s.Client.Models.EmbedContent(timeoutCtx, s.EmbedModel, content, nil)
		if err != nil {
			return err
		}
		embedding, err = validateEmbeddingResponse(result)
		if err != nil {
			return &invalidResponseError{err}
		}
		return nil
	})
	return embedding, err
}

type invalidResponseError struct {
	err error
}

func (e *invalidResponseError) Error() string {
	return "invalid response: " + e.err.Error()
}

func (e *invalidResponseError) Unwrap() error {
	return e.err
}

// withRetry runs call with exponential backoff on retryable errors and
// feeds the outcome into the circuit breaker.
func (s *GeminiService) withRetry(ctx context.Context, op string, call func() error) error {
	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.log.Debug("retrying", zap.String("op", op), zap.Int("attempt", attempt), zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("context timeout during retry: %w", ctx.Err())
			}
		}

		err := call()
		if err == nil {
			s.recordSuccess()
			return nil
		}
		lastErr = err

		var invalid *invalidResponseError
		if errors.As(err, &invalid) || !isRetryableError(err) {
			s.recordFailure()
			s.log.Warn("non-retryable error", zap.String("op", op), zap.Error(err))
			return fmt.Errorf("%s failed: %w", op, err)
		}
		s.log.Debug("retryable error", zap.String("op", op), zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.recordFailure()
	return fmt.Errorf("max retries (%d) exceeded for %s: %w", s.MaxRetries, op, lastErr)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}
	return delay
}

func (s *GeminiService) checkCircuit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consecutiveErrors >= s.circuitBreakerMax {
		return fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", s.consecutiveErrors)
	}
	return nil
}

func (s *GeminiService) recordSuccess() {
	s.mu.Lock()
	s.consecutiveErrors = 0
	s.mu.Unlock()
}

func (s *GeminiService) recordFailure() {
	s.mu.Lock()
	s.consecutiveErrors++
	s.mu.Unlock()
}

func (s *GeminiService) ResetCircuitBreaker() {
	s.recordSuccess()
	s.log.Info("circuit breaker reset")
}

func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consecutiveErrors, s.consecutiveErrors >= s.circuitBreakerMax
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}
	if code != 0 {
		switch code {
		case 429, 500, 502, 503, 504:
			return true
		default:
			return false
		}
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

func validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}
	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}
	return embeddings, nil
}
