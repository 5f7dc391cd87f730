package advisor

import (
	"context"
	"errors"
	"testing"

	"a11y-advocate-be/internal/constant"
	"a11y-advocate-be/pkg/knowledge"
	"a11y-advocate-be/pkg/llm"
	"a11y-advocate-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider scripts the generation backend for pipeline tests.
type fakeProvider struct {
	configured bool
	answer     string
	err        error

	textCalls  int
	imageCalls int
	lastPrompt string
}

func (f *fakeProvider) GenerateText(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.textCalls++
	f.lastPrompt = prompt
	return f.answer, f.err
}

func (f *fakeProvider) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string, options ...llm.Option) (string, error) {
	f.imageCalls++
	f.lastPrompt = prompt
	return f.answer, f.err
}

func (f *fakeProvider) Configured() bool {
	return f.configured
}

func newTestSession() *store.Session {
	// Zero delay keeps tests instant; limiter behavior has its own suite.
	return store.NewSession("test-session", 5, 0)
}

func TestResolveOfflineNeverCallsProvider(t *testing.T) {
	provider := &fakeProvider{configured: true, answer: "should not be used"}
	r := NewResolver(knowledge.Default(), provider)
	sess := newTestSession()

	res, err := r.Resolve(context.Background(), sess, "What ratio do I need?")
	require.NoError(t, err)

	assert.Equal(t, store.ProvenanceOffline, res.Provenance)
	topic, _ := knowledge.Default().TopicByID(knowledge.TopicColorContrast)
	assert.Equal(t, topic.Answer, res.Answer)
	assert.Zero(t, provider.textCalls, "offline hits must not cost an API call")
	assert.Zero(t, sess.Cache.Len(), "offline answers are not cached")
}

func TestResolveLiveThenCached(t *testing.T) {
	provider := &fakeProvider{configured: true, answer: "generated guidance"}
	r := NewResolver(knowledge.Default(), provider)
	sess := newTestSession()
	prompt := "how should I caption live video streams?"

	first, err := r.Resolve(context.Background(), sess, prompt)
	require.NoError(t, err)
	assert.Equal(t, store.ProvenanceLive, first.Provenance)
	assert.Equal(t, "generated guidance", first.Answer)
	assert.Equal(t, 1, provider.textCalls)

	second, err := r.Resolve(context.Background(), sess, prompt)
	require.NoError(t, err)
	assert.Equal(t, store.ProvenanceCached, second.Provenance)
	assert.Equal(t, first.Answer, second.Answer)
	assert.Equal(t, 1, provider.textCalls, "second resolve must be served from cache")
}

func TestResolveWrapsPromptForLiveCall(t *testing.T) {
	provider := &fakeProvider{configured: true, answer: "ok"}
	r := NewResolver(knowledge.Default(), provider)

	_, err := r.Resolve(context.Background(), newTestSession(), "how do I caption video?")
	require.NoError(t, err)

	assert.Contains(t, provider.lastPrompt, "how do I caption video?")
	assert.Contains(t, provider.lastPrompt, "accessibility expert")
}

func TestResolveQuotaFallsBack(t *testing.T) {
	provider := &fakeProvider{configured: true, err: llm.ErrQuotaExceeded}
	r := NewResolver(knowledge.Default(), provider)
	sess := newTestSession()

	res, err := r.Resolve(context.Background(), sess, "tell me about video captions")
	require.NoError(t, err, "quota exhaustion is recovered locally")

	assert.Equal(t, store.ProvenanceFallback, res.Provenance)
	assert.NotEmpty(t, res.Answer)
	assert.Equal(t, constant.FallbackResources, res.Answer)
	assert.Zero(t, sess.Cache.Len(), "fallback answers must not be cached")
}

func TestResolveUnconfiguredFallsBack(t *testing.T) {
	provider := &fakeProvider{configured: false}
	r := NewResolver(knowledge.Default(), provider)
	sess := newTestSession()

	res, err := r.Resolve(context.Background(), sess, "tell me about video captions")
	require.NoError(t, err)

	assert.Equal(t, store.ProvenanceFallback, res.Provenance)
	assert.Equal(t, constant.FallbackResources, res.Answer)
	assert.Zero(t, provider.textCalls, "unconfigured provider is never called")
}

func TestResolveServiceErrorSurfaces(t *testing.T) {
	serviceErr := &llm.ServiceError{Status: 403, Message: "API key blocked"}
	provider := &fakeProvider{configured: true, err: serviceErr}
	r := NewResolver(knowledge.Default(), provider)
	sess := newTestSession()

	_, err := r.Resolve(context.Background(), sess, "tell me about video captions")

	var got *llm.ServiceError
	require.True(t, errors.As(err, &got))
	assert.Zero(t, sess.Cache.Len())
}

func TestResolveRejectsEmptyPrompt(t *testing.T) {
	provider := &fakeProvider{configured: true}
	r := NewResolver(knowledge.Default(), provider)

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := r.Resolve(context.Background(), newTestSession(), prompt)
		assert.ErrorIs(t, err, ErrEmptyPrompt)
	}
	assert.Zero(t, provider.textCalls, "blank prompts must not reach the provider")
}

func TestAnalyzeImageLive(t *testing.T) {
	provider := &fakeProvider{configured: true, answer: "alt text: a bar chart"}
	r := NewResolver(knowledge.Default(), provider)
	sess := newTestSession()

	res, err := r.AnalyzeImage(context.Background(), sess, []byte{0x89, 0x50}, "image/png")
	require.NoError(t, err)

	assert.Equal(t, store.ProvenanceLive, res.Provenance)
	assert.Equal(t, "alt text: a bar chart", res.Analysis)
	topic, _ := knowledge.Default().TopicByID(knowledge.TopicAltText)
	assert.Equal(t, topic.Answer, res.Guidance, "offline guidance accompanies every analysis")
	assert.Equal(t, 1, provider.imageCalls)
	assert.Zero(t, sess.Cache.Len(), "image payloads are never fingerprinted or cached")
}

func TestAnalyzeImageUnconfigured(t *testing.T) {
	provider := &fakeProvider{configured: false}
	r := NewResolver(knowledge.Default(), provider)

	res, err := r.AnalyzeImage(context.Background(), newTestSession(), []byte{0x01}, "image/png")
	require.NoError(t, err)

	assert.Equal(t, store.ProvenanceFallback, res.Provenance)
	assert.Empty(t, res.Analysis)
	assert.NotEmpty(t, res.Guidance)
	assert.Zero(t, provider.imageCalls)
}

func TestAnalyzeImageQuotaDegradesToGuidance(t *testing.T) {
	provider := &fakeProvider{configured: true, err: llm.ErrQuotaExceeded}
	r := NewResolver(knowledge.Default(), provider)

	res, err := r.AnalyzeImage(context.Background(), newTestSession(), []byte{0x01}, "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, store.ProvenanceFallback, res.Provenance)
	assert.Empty(t, res.Analysis)
	assert.NotEmpty(t, res.Guidance)
}

func TestAnalyzeImageRejectsEmptyPayload(t *testing.T) {
	provider := &fakeProvider{configured: true}
	r := NewResolver(knowledge.Default(), provider)

	_, err := r.AnalyzeImage(context.Background(), newTestSession(), nil, "image/png")
	assert.ErrorIs(t, err, ErrEmptyImage)
}
