package advisor

import (
	"context"
	"errors"
	"strings"

	"a11y-advocate-be/internal/constant"
	"a11y-advocate-be/pkg/knowledge"
	"a11y-advocate-be/pkg/llm"
	"a11y-advocate-be/pkg/store"
)

var (
	// ErrEmptyPrompt rejects blank questions before they reach any paid
	// resource.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrEmptyImage rejects image analysis without an image payload.
	ErrEmptyImage = errors.New("image payload is empty")
)

// Resolution is the outcome of one resolved chat turn: the answer plus
// where it came from.
type Resolution struct {
	Answer     string
	Provenance string
}

// ImageAnalysis is the outcome of the image flow. Guidance is always
// populated from the offline knowledge base as a no-cost suggestion;
// Analysis is only set when a live call succeeded.
type ImageAnalysis struct {
	Guidance   string
	Analysis   string
	Provenance string
}

// Resolver is the cost-aware resolution pipeline. Per request it walks
// cache -> knowledge base -> rate limiter -> live call, degrading to static
// fallback content when the generation capability is unavailable or
// exhausted. The resolver itself is stateless; all mutable state lives on
// the session passed in.
type Resolver struct {
	kb       *knowledge.Base
	provider llm.Provider
}

func NewResolver(kb *knowledge.Base, provider llm.Provider) *Resolver {
	return &Resolver{kb: kb, provider: provider}
}

// Resolve answers one user prompt. Provenance is one of cached, offline,
// live or fallback. Only classified service failures return an error; a
// quota-exhausted or unconfigured provider degrades to fallback content
// instead.
func (r *Resolver) Resolve(ctx context.Context, sess *store.Session, prompt string) (*Resolution, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	if answer, ok := sess.Cache.Get(prompt); ok {
		return &Resolution{Answer: answer, Provenance: store.ProvenanceCached}, nil
	}

	if answer, ok := r.kb.Lookup(prompt); ok {
		return &Resolution{Answer: answer, Provenance: store.ProvenanceOffline}, nil
	}

	if !r.provider.Configured() {
		return &Resolution{Answer: constant.FallbackResources, Provenance: store.ProvenanceFallback}, nil
	}

	if err := sess.Limiter.Acquire(ctx); err != nil {
		return nil, err
	}

	answer, err := r.provider.GenerateText(ctx, constant.WrapAccessibilityPrompt(prompt))
	if err != nil {
		if errors.Is(err, llm.ErrQuotaExceeded) {
			// Quota exhaustion is recovered locally; the cache stays
			// untouched so a later retry can still go live.
			return &Resolution{Answer: constant.FallbackResources, Provenance: store.ProvenanceFallback}, nil
		}
		return nil, err
	}

	sess.Cache.Put(prompt, answer)
	return &Resolution{Answer: answer, Provenance: store.ProvenanceLive}, nil
}

// AnalyzeImage runs the image variant of the pipeline. Cache and knowledge
// base are skipped on purpose: fingerprinting raw image bytes is out of
// scope. The offline alt-text guidance is always offered first, so an
// unavailable or exhausted provider degrades to guidance-only rather than
// failing the request.
func (r *Resolver) AnalyzeImage(ctx context.Context, sess *store.Session, image []byte, mimeType string) (*ImageAnalysis, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}

	result := &ImageAnalysis{Guidance: r.altTextGuidance()}

	if !r.provider.Configured() {
		result.Provenance = store.ProvenanceFallback
		return result, nil
	}

	if err := sess.Limiter.Acquire(ctx); err != nil {
		return nil, err
	}

	analysis, err := r.provider.GenerateFromImage(ctx, constant.ImageAnalysisPrompt, image, mimeType)
	if err != nil {
		if errors.Is(err, llm.ErrQuotaExceeded) {
			result.Provenance = store.ProvenanceFallback
			return result, nil
		}
		return nil, err
	}

	result.Analysis = analysis
	result.Provenance = store.ProvenanceLive
	return result, nil
}

func (r *Resolver) altTextGuidance() string {
	if t, ok := r.kb.TopicByID(knowledge.TopicAltText); ok {
		return t.Answer
	}
	return constant.FallbackResources
}
