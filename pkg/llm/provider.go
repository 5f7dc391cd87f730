package llm

import (
	"context"
)

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any generation backend. Both calls are
// synchronous single attempts; retry policy belongs to the caller (and the
// resolution pipeline deliberately does not retry). Failures are classified
// into the small taxonomy in errors.go so callers never have to inspect raw
// provider error text.
type Provider interface {
	// GenerateText sends a single text prompt and returns the response text.
	GenerateText(ctx context.Context, prompt string, options ...Option) (string, error)

	// GenerateFromImage sends a prompt together with raw image bytes as
	// multi-part input and returns the response text.
	GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string, options ...Option) (string, error)

	// Configured reports whether a usable credential is present. Callers
	// use this to skip live calls entirely rather than burn a request on a
	// guaranteed ErrUnconfigured.
	Configured() bool
}
