package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetChatHistoryResponse struct {
	Id         uuid.UUID `json:"id"`
	Role       string    `json:"role"`
	Chat       string    `json:"chat"`
	Provenance string    `json:"provenance,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type SendChatRequest struct {
	Chat string `json:"chat" validate:"required"`
}

type SendChatResponseChat struct {
	Id         uuid.UUID `json:"id"`
	Chat       string    `json:"chat"`
	Role       string    `json:"role"`
	Provenance string    `json:"provenance,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type SendChatResponse struct {
	ChatSessionId uuid.UUID             `json:"chat_session_id"`
	Sent          *SendChatResponseChat `json:"sent"`
	Reply         *SendChatResponseChat `json:"reply"`
}

type AnalyzeImageResponse struct {
	ChatSessionId uuid.UUID `json:"chat_session_id"`
	// Guidance is the offline alt-text reference, returned on every call
	// before any quota is spent.
	Guidance   string `json:"guidance"`
	Analysis   string `json:"analysis,omitempty"`
	Provenance string `json:"provenance"`
}

type TopicResponse struct {
	Id       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
