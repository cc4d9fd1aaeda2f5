package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnavailable     = errors.New("unavailable")

	ErrOwnerRequired  = fmt.Errorf("%w: owner is required", ErrInvalidArgument)
	ErrJobNotFound    = fmt.Errorf("job %w", ErrNotFound)
	ErrResumeNotFound = fmt.Errorf("resume %w", ErrNotFound)
	ErrReportNotFound = fmt.Errorf("match report %w", ErrNotFound)
	ErrNoResume       = fmt.Errorf("%w: no resume found, upload a resume first", ErrInvalidArgument)
	ErrLLMUnavailable = fmt.Errorf("%w: language model request failed", ErrUnavailable)
	ErrNoEmbedder     = fmt.Errorf("%w: embeddings are not configured", ErrUnavailable)
)
