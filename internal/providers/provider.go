package providers

import (
	"context"
	"encoding/json"
	"fmt"
)

// AnalyzeRequest carries one meal image and the fixed instruction set for a
// structured nutrition estimate.
type AnalyzeRequest struct {
	// Image is the raw (decoded) image payload.
	Image []byte
	// MimeType describes Image, e.g. "image/jpeg".
	MimeType string
	// Instruction is the static task description; it is not user input.
	Instruction string
	// Schema is the structured-output schema, in the response-schema
	// dialect Gemini accepts. Providers without schema enforcement fall
	// back to JSON-mode plus the instruction text.
	Schema json.RawMessage
	// MaxTokens caps the response length; 0 selects a provider default.
	MaxTokens int
	// Temperature near zero keeps repeat analyses of the same image
	// deterministic, which the cache design relies on.
	Temperature float64
}

// AnalyzeResponse is the raw, untrusted model output. Content is expected
// to be serialized JSON but must be normalized before use.
type AnalyzeResponse struct {
	Content    string
	TokensUsed int
}

// Analyzer is the inference-client abstraction consumed by the orchestrator.
type Analyzer interface {
	AnalyzeImage(ctx context.Context, req AnalyzeRequest) (AnalyzeResponse, error)
	Name() string
}

// New creates an Analyzer by provider name.
func New(provider, model string) (Analyzer, error) {
	switch provider {
	case "gemini", "google":
		return NewGemini(model)
	case "openai":
		return NewOpenAI(model)
	case "ollama":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
