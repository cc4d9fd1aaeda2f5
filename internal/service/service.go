package service

import "context"

const careerSystemPrompt = "You are a career assistant helping candidates tailor their application to a job posting."

// TextGenerator completes a prompt with a language model.
type TextGenerator interface {
	Name() string
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Embedder turns text into a dense vector.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}
