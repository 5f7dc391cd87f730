package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"a11y-advocate-be/pkg/llm"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiProvider talks to the Google Generative Language API over plain
// net/http. It classifies remote failures into the llm error taxonomy so
// callers never string-match provider messages themselves.
type GeminiProvider struct {
	APIKey    string
	ModelName string
	BaseURL   string // overridable for tests
	Client    *http.Client
}

// Ensure GeminiProvider implements Provider
var _ llm.Provider = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return &GeminiProvider{
		APIKey:    apiKey,
		ModelName: modelName,
		BaseURL:   defaultBaseURL,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (g *GeminiProvider) Configured() bool {
	return g.APIKey != ""
}

// --- Request/Response structs (Internal to this package) ---

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// --- Interface Implementation ---

func (g *GeminiProvider) GenerateText(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	parts := []geminiPart{{Text: prompt}}
	return g.generate(ctx, parts, options...)
}

func (g *GeminiProvider) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string, options ...llm.Option) (string, error) {
	parts := []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}
	return g.generate(ctx, parts, options...)
}

func (g *GeminiProvider) generate(ctx context.Context, parts []geminiPart, options ...llm.Option) (string, error) {
	if !g.Configured() {
		return "", llm.ErrUnconfigured
	}

	opts := &llm.Options{}
	for _, opt := range options {
		opt(opts)
	}

	model := g.ModelName
	if opts.Model != "" {
		model = opts.Model
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: parts, Role: "user"}},
	}
	if opts.Temperature != 0 || opts.MaxTokens != 0 {
		cfg := &geminiGenerationConfig{MaxOutputTokens: opts.MaxTokens}
		if opts.Temperature != 0 {
			t := opts.Temperature
			cfg.Temperature = &t
		}
		payload.GenerationConfig = cfg
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", &llm.ServiceError{Message: fmt.Sprintf("marshal request: %v", err)}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", &llm.ServiceError{Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("x-goog-api-key", g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.Client.Do(req)
	if err != nil {
		// Transport failures and timeouts are service errors per taxonomy.
		return "", &llm.ServiceError{Message: err.Error()}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &llm.ServiceError{Message: fmt.Sprintf("read response: %v", err)}
	}

	if res.StatusCode != http.StatusOK {
		return "", classifyStatus(res.StatusCode, string(resBody))
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", &llm.ServiceError{Message: fmt.Sprintf("unmarshal response: %v", err)}
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", &llm.ServiceError{Message: "empty response from model"}
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

// classifyStatus maps a non-200 response onto the error taxonomy. Quota
// detection is deliberately coarse: a 429 status or a quota marker anywhere
// in the body counts, since the exact provider wording shifts between API
// versions.
func classifyStatus(status int, body string) error {
	lower := strings.ToLower(body)
	if status == http.StatusTooManyRequests ||
		strings.Contains(lower, "quota") ||
		strings.Contains(lower, "resource_exhausted") {
		return llm.ErrQuotaExceeded
	}
	return &llm.ServiceError{Status: status, Message: body}
}
