package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/interview-transcript/internal/logger"
)

// generateFunc sends a prompt using one API key and returns the model text.
type generateFunc func(ctx context.Context, apiKey, prompt string) (string, error)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
	generate   generateFunc
	now        func() string
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	s := &implSummarizer{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
		now:     today,
	}
	s.generate = s.callGemini
	return s
}
