package config

import (
	"os"
	"sync"
)

type OpenRouterConfig struct {
	APIKey string
	Model  string
	URL    string
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		model := os.Getenv("OPENROUTER_MODEL")
		if model == "" {
			model = "openai/gpt-4o-mini"
		}
		url := os.Getenv("OPENROUTER_URL")
		if url == "" {
			url = "https://openrouter.ai/api/v1/chat/completions"
		}
		openRouterConfig = &OpenRouterConfig{
			APIKey: os.Getenv("OPENROUTER_API_KEY"),
			Model:  model,
			URL:    url,
		}
	})
	return openRouterConfig
}
