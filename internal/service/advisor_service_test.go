package service

import (
	"context"
	"encoding/json"
	"testing"

	"a11y-advocate-be/internal/config"
	"a11y-advocate-be/internal/constant"
	"a11y-advocate-be/internal/dto"
	"a11y-advocate-be/internal/repository/memory"
	"a11y-advocate-be/pkg/advisor"
	"a11y-advocate-be/pkg/knowledge"
	"a11y-advocate-be/pkg/llm"
	"a11y-advocate-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	configured bool
	answer     string
	err        error
	textCalls  int
}

func (f *fakeProvider) GenerateText(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.textCalls++
	return f.answer, f.err
}

func (f *fakeProvider) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string, options ...llm.Option) (string, error) {
	return f.answer, f.err
}

func (f *fakeProvider) Configured() bool { return f.configured }

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type staticMetrics struct {
	counters map[string]int64
}

func (m *staticMetrics) Consume(ctx context.Context) error { return nil }

func (m *staticMetrics) Snapshot() map[string]int64 { return m.counters }

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}

func (nopLogger) Info(module, message string, details map[string]interface{}) {}

func (nopLogger) Warn(module, message string, details map[string]interface{}) {}

func (nopLogger) Error(module, message string, details map[string]interface{}) {}

func (nopLogger) Sync() error { return nil }

type advisorFixture struct {
	service   IAdvisorService
	provider  *fakeProvider
	publisher *capturingPublisher
	repo      *memory.SessionRepository
}

func newAdvisorFixture(provider *fakeProvider) *advisorFixture {
	cfg := &config.Config{
		Ai: config.AIConfig{
			Provider:     "gemini",
			Model:        "gemini-2.0-flash",
			MaxCacheSize: 5,
			// zero delay keeps tests instant
		},
	}
	repo := memory.NewSessionRepository()
	publisher := &capturingPublisher{}
	metrics := &staticMetrics{counters: map[string]int64{"live": 3}}
	resolver := advisor.NewResolver(knowledge.Default(), provider)

	return &advisorFixture{
		service:   NewAdvisorService(cfg, resolver, provider, repo, publisher, metrics, nopLogger{}),
		provider:  provider,
		publisher: publisher,
		repo:      repo,
	}
}

func (f *advisorFixture) createSession(t *testing.T) uuid.UUID {
	t.Helper()
	res, err := f.service.CreateSession(context.Background())
	require.NoError(t, err)
	return res.Id
}

func TestCreateSessionSeedsGreeting(t *testing.T) {
	f := newAdvisorFixture(&fakeProvider{configured: true})
	id := f.createSession(t)

	history, err := f.service.GetChatHistory(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, constant.ChatMessageRoleAssistant, history[0].Role)
	assert.Equal(t, constant.SessionGreeting, history[0].Chat)
}

func TestSendChatRecordsBothTurns(t *testing.T) {
	f := newAdvisorFixture(&fakeProvider{configured: true})
	id := f.createSession(t)

	res, err := f.service.SendChat(context.Background(), id, &dto.SendChatRequest{Chat: "What ratio do I need?"})
	require.NoError(t, err)

	assert.Equal(t, store.ProvenanceOffline, res.Reply.Provenance)
	assert.Equal(t, constant.ChatMessageRoleUser, res.Sent.Role)
	assert.Equal(t, "What ratio do I need?", res.Sent.Chat)
	assert.Zero(t, f.provider.textCalls)

	history, err := f.service.GetChatHistory(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, history, 3) // greeting + user + assistant
}

func TestSendChatPublishesResolutionEvent(t *testing.T) {
	f := newAdvisorFixture(&fakeProvider{configured: true, answer: "live answer"})
	id := f.createSession(t)

	_, err := f.service.SendChat(context.Background(), id, &dto.SendChatRequest{Chat: "caption live streams?"})
	require.NoError(t, err)

	require.Len(t, f.publisher.payloads, 1)
	var evt struct {
		Type string                 `json:"type"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &evt))
	assert.Equal(t, "CHAT_RESOLVED", evt.Type)
	assert.Equal(t, store.ProvenanceLive, evt.Data["provenance"])
	assert.Equal(t, id.String(), evt.Data["session_id"])
}

func TestSendChatUnknownSession(t *testing.T) {
	f := newAdvisorFixture(&fakeProvider{configured: true})

	_, err := f.service.SendChat(context.Background(), uuid.New(), &dto.SendChatRequest{Chat: "hello forms"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendChatServiceErrorKeepsQuestionOnly(t *testing.T) {
	provider := &fakeProvider{configured: true, err: &llm.ServiceError{Status: 500, Message: "boom"}}
	f := newAdvisorFixture(provider)
	id := f.createSession(t)

	_, err := f.service.SendChat(context.Background(), id, &dto.SendChatRequest{Chat: "tell me about video captions"})
	require.Error(t, err)

	history, herr := f.service.GetChatHistory(context.Background(), id)
	require.NoError(t, herr)
	require.Len(t, history, 2, "failed turns keep the question but no answer")
	assert.Equal(t, constant.ChatMessageRoleUser, history[1].Role)
	assert.Empty(t, f.publisher.payloads, "failed turns publish no resolution event")
}

func TestDeleteSession(t *testing.T) {
	f := newAdvisorFixture(&fakeProvider{configured: true})
	id := f.createSession(t)

	require.NoError(t, f.service.DeleteSession(context.Background(), id))

	_, err := f.service.GetChatHistory(context.Background(), id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, f.service.DeleteSession(context.Background(), id), ErrSessionNotFound)
}

func TestSessionStatusTracksCache(t *testing.T) {
	f := newAdvisorFixture(&fakeProvider{configured: true, answer: "live answer"})
	id := f.createSession(t)

	status, err := f.service.SessionStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, status.CacheSize)
	assert.Equal(t, 5, status.CacheCapacity)
	assert.True(t, status.RateLimiterReady)

	_, err = f.service.SendChat(context.Background(), id, &dto.SendChatRequest{Chat: "caption live streams?"})
	require.NoError(t, err)

	status, err = f.service.SessionStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, status.CacheSize, "live answers land in the cache")
	assert.Equal(t, 3, status.ConversationLen)
}

func TestSystemStatus(t *testing.T) {
	f := newAdvisorFixture(&fakeProvider{configured: false})
	f.createSession(t)

	status, err := f.service.SystemStatus(context.Background())
	require.NoError(t, err)

	assert.False(t, status.ApiConfigured)
	assert.Equal(t, "gemini", status.Provider)
	assert.Equal(t, "gemini-2.0-flash", status.Model)
	assert.Equal(t, 1, status.ActiveSessions)
	assert.Equal(t, int64(3), status.Resolutions["live"])
}
