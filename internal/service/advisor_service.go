package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"a11y-advocate-be/internal/config"
	"a11y-advocate-be/internal/constant"
	"a11y-advocate-be/internal/dto"
	"a11y-advocate-be/internal/pkg/logger"
	"a11y-advocate-be/internal/repository/memory"
	"a11y-advocate-be/pkg/advisor"
	"a11y-advocate-be/pkg/events"
	"a11y-advocate-be/pkg/llm"
	"a11y-advocate-be/pkg/store"

	"github.com/google/uuid"
)

// ErrSessionNotFound covers lookups of unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// IAdvisorService defines the advisor service interface
type IAdvisorService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, sessionId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	AnalyzeImage(ctx context.Context, sessionId uuid.UUID, image []byte, mimeType string) (*dto.AnalyzeImageResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
	SessionStatus(ctx context.Context, sessionId uuid.UUID) (*dto.SessionStatusResponse, error)
	SystemStatus(ctx context.Context) (*dto.SystemStatusResponse, error)
}

// advisorService owns session lifecycle and delegates each turn to the
// resolution pipeline, recording the outcome into the session's
// conversation.
type advisorService struct {
	cfg         *config.Config
	resolver    *advisor.Resolver
	provider    llm.Provider
	sessionRepo *memory.SessionRepository
	publisher   IPublisherService
	metrics     IMetricsService
	logger      logger.ILogger
}

func NewAdvisorService(
	cfg *config.Config,
	resolver *advisor.Resolver,
	provider llm.Provider,
	sessionRepo *memory.SessionRepository,
	publisher IPublisherService,
	metrics IMetricsService,
	log logger.ILogger,
) IAdvisorService {
	return &advisorService{
		cfg:         cfg,
		resolver:    resolver,
		provider:    provider,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		metrics:     metrics,
		logger:      log,
	}
}

// CreateSession starts a fresh session with its own cache, limiter and
// conversation, seeded with a greeting turn.
func (as *advisorService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	id := uuid.New()
	sess := store.NewSession(id.String(), as.cfg.Ai.MaxCacheSize, as.cfg.Ai.RateLimitDelay)

	sess.Append(store.ConversationEntry{
		Id:        uuid.New().String(),
		Role:      constant.ChatMessageRoleAssistant,
		Content:   constant.SessionGreeting,
		CreatedAt: time.Now(),
	})

	as.sessionRepo.Save(sess)
	as.logger.Info("advisor", "Session created", map[string]interface{}{"session_id": sess.ID})

	return &dto.CreateSessionResponse{Id: id}, nil
}

// GetChatHistory returns the full conversation sequence for redisplay.
func (as *advisorService) GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	sess, found := as.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	resp := make([]*dto.GetChatHistoryResponse, 0, len(sess.Conversation))
	for _, entry := range sess.Conversation {
		entryId, _ := uuid.Parse(entry.Id)
		resp = append(resp, &dto.GetChatHistoryResponse{
			Id:         entryId,
			Role:       entry.Role,
			Chat:       entry.Content,
			Provenance: entry.Provenance,
			CreatedAt:  entry.CreatedAt,
		})
	}

	return resp, nil
}

// SendChat resolves one user turn through the pipeline and records both
// sides of the exchange.
func (as *advisorService) SendChat(ctx context.Context, sessionId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sess, found := as.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	started := time.Now()
	resolution, err := as.resolver.Resolve(ctx, sess, request.Chat)
	if err != nil {
		if !errors.Is(err, advisor.ErrEmptyPrompt) {
			// The question was real, so it stays in the history even though
			// the answer failed. Nothing is cached for failed turns.
			as.appendEntry(sess, constant.ChatMessageRoleUser, request.Chat, "")
			as.logger.Error("advisor", "Resolution failed", map[string]interface{}{
				"session_id": sess.ID,
				"error":      err.Error(),
			})
		}
		return nil, err
	}

	now := time.Now()
	userEntry := as.appendEntry(sess, constant.ChatMessageRoleUser, request.Chat, "")
	replyEntry := as.appendEntry(sess, constant.ChatMessageRoleAssistant, resolution.Answer, resolution.Provenance)
	as.sessionRepo.Save(sess) // refresh the idle-expiration clock

	as.publishResolved(ctx, sess.ID, resolution.Provenance, now.Sub(started))

	return &dto.SendChatResponse{
		ChatSessionId: sessionId,
		Sent:          toResponseChat(userEntry),
		Reply:         toResponseChat(replyEntry),
	}, nil
}

// AnalyzeImage runs the image flow. The conversation records the exchange
// as a turn so the history panel shows image analyses alongside chat.
func (as *advisorService) AnalyzeImage(ctx context.Context, sessionId uuid.UUID, image []byte, mimeType string) (*dto.AnalyzeImageResponse, error) {
	sess, found := as.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	started := time.Now()
	analysis, err := as.resolver.AnalyzeImage(ctx, sess, image, mimeType)
	if err != nil {
		as.logger.Error("advisor", "Image analysis failed", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	if analysis.Analysis != "" {
		as.appendEntry(sess, constant.ChatMessageRoleUser, "[image analysis request]", "")
		as.appendEntry(sess, constant.ChatMessageRoleAssistant, analysis.Analysis, analysis.Provenance)
		as.sessionRepo.Save(sess)
	}

	as.publishResolved(ctx, sess.ID, analysis.Provenance, time.Since(started))

	return &dto.AnalyzeImageResponse{
		ChatSessionId: sessionId,
		Guidance:      analysis.Guidance,
		Analysis:      analysis.Analysis,
		Provenance:    analysis.Provenance,
	}, nil
}

// DeleteSession ends a session: cache, limiter state and conversation are
// destroyed together.
func (as *advisorService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	if _, found := as.sessionRepo.Get(sessionId.String()); !found {
		return ErrSessionNotFound
	}
	as.sessionRepo.Delete(sessionId.String())
	as.logger.Info("advisor", "Session deleted", map[string]interface{}{"session_id": sessionId.String()})
	return nil
}

// SessionStatus exposes cache occupancy and limiter readiness for the
// diagnostics panel.
func (as *advisorService) SessionStatus(ctx context.Context, sessionId uuid.UUID) (*dto.SessionStatusResponse, error) {
	sess, found := as.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	ready, wait := sess.Limiter.Ready()
	return &dto.SessionStatusResponse{
		CacheSize:        sess.Cache.Len(),
		CacheCapacity:    sess.Cache.Cap(),
		RateLimiterReady: ready,
		RateLimitWaitMs:  wait.Milliseconds(),
		ConversationLen:  len(sess.Conversation),
		CreatedAt:        sess.CreatedAt.Format(time.RFC3339),
	}, nil
}

// SystemStatus reports provider configuration and the aggregated
// per-provenance resolution counters.
func (as *advisorService) SystemStatus(ctx context.Context) (*dto.SystemStatusResponse, error) {
	return &dto.SystemStatusResponse{
		ApiConfigured:  as.provider.Configured(),
		Provider:       as.cfg.Ai.Provider,
		Model:          as.cfg.Ai.Model,
		ActiveSessions: as.sessionRepo.Count(),
		Resolutions:    as.metrics.Snapshot(),
	}, nil
}

func (as *advisorService) appendEntry(sess *store.Session, role, content, provenance string) store.ConversationEntry {
	return sess.Append(store.ConversationEntry{
		Id:         uuid.New().String(),
		Role:       role,
		Content:    content,
		Provenance: provenance,
		CreatedAt:  time.Now(),
	})
}

func (as *advisorService) publishResolved(ctx context.Context, sessionID, provenance string, duration time.Duration) {
	evt := events.NewChatResolved(sessionID, provenance, duration)
	payload, err := json.Marshal(evt)
	if err != nil {
		as.logger.Warn("advisor", "Failed to marshal resolution event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := as.publisher.Publish(ctx, payload); err != nil {
		as.logger.Warn("advisor", "Failed to publish resolution event", map[string]interface{}{"error": err.Error()})
	}
}

func toResponseChat(entry store.ConversationEntry) *dto.SendChatResponseChat {
	entryId, _ := uuid.Parse(entry.Id)
	return &dto.SendChatResponseChat{
		Id:         entryId,
		Chat:       entry.Content,
		Role:       entry.Role,
		Provenance: entry.Provenance,
		CreatedAt:  entry.CreatedAt,
	}
}
