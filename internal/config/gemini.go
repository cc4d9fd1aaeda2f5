package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = "gemini-2.5-flash"
		}
		embedModel := os.Getenv("GEMINI_EMBED_MODEL")
		if embedModel == "" {
			embedModel = "gemini-embedding-001"
		}
		geminiConfig = &GeminiConfig{
			APIKey:     os.Getenv("GEMINI_API_KEY"),
			Model:      model,
			EmbedModel: embedModel,
		}
	})
	return geminiConfig
}
