package ollama

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"a11y-advocate-be/pkg/llm"
)

// OllamaProvider is a local generation backend for development without a
// Gemini credential. Multimodal prompts require a vision-capable model
// (e.g. llava).
type OllamaProvider struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

// Ensure OllamaProvider implements Provider
var _ llm.Provider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	return &OllamaProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Configured is true whenever a base URL is set; a local Ollama needs no
// credential.
func (o *OllamaProvider) Configured() bool {
	return o.BaseURL != ""
}

// --- Request/Response structs (Internal to this package) ---

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"` // base64
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// --- Interface Implementation ---

func (o *OllamaProvider) GenerateText(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return o.chat(ctx, ollamaMessage{Role: "user", Content: prompt}, options...)
}

func (o *OllamaProvider) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string, options ...llm.Option) (string, error) {
	msg := ollamaMessage{
		Role:    "user",
		Content: prompt,
		Images:  []string{base64.StdEncoding.EncodeToString(image)},
	}
	return o.chat(ctx, msg, options...)
}

func (o *OllamaProvider) chat(ctx context.Context, msg ollamaMessage, options ...llm.Option) (string, error) {
	if !o.Configured() {
		return "", llm.ErrUnconfigured
	}

	opts := &llm.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range options {
		opt(opts)
	}

	model := o.ModelName
	if opts.Model != "" {
		model = opts.Model
	}

	reqPayload := ollamaChatRequest{
		Model:    model,
		Messages: []ollamaMessage{msg},
		Stream:   false,
		Options: &ollamaOptions{
			Temperature: opts.Temperature,
		},
	}
	if opts.MaxTokens > 0 {
		reqPayload.Options.NumPredict = opts.MaxTokens
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", &llm.ServiceError{Message: fmt.Sprintf("marshal request: %v", err)}
	}

	url := o.BaseURL + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", &llm.ServiceError{Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", &llm.ServiceError{Message: err.Error()}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.ServiceError{Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", llm.ErrQuotaExceeded
	}
	if resp.StatusCode != http.StatusOK {
		return "", &llm.ServiceError{Status: resp.StatusCode, Message: string(bodyBytes)}
	}

	var ollamaResp ollamaChatResponse
	if err := json.Unmarshal(bodyBytes, &ollamaResp); err != nil {
		return "", &llm.ServiceError{Message: fmt.Sprintf("unmarshal response: %v", err)}
	}

	return ollamaResp.Message.Content, nil
}
