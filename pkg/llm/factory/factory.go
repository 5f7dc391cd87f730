package factory

import (
	"fmt"

	"a11y-advocate-be/pkg/llm"
	"a11y-advocate-be/pkg/llm/gemini"
	"a11y-advocate-be/pkg/llm/ollama"
)

// NewProvider selects a generation backend by name. "gemini" is the
// default; "ollama" exists for credential-free local development.
func NewProvider(providerName, modelName, apiKey, ollamaBaseURL string) (llm.Provider, error) {
	switch providerName {
	case "", "gemini":
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", providerName)
	}
}
