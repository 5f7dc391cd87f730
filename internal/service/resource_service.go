package service

import (
	"context"

	"a11y-advocate-be/internal/dto"
	"a11y-advocate-be/pkg/knowledge"
)

// IResourceService serves the static reference panel.
type IResourceService interface {
	GetTopics(ctx context.Context) []*dto.TopicResponse
}

type resourceService struct {
	kb *knowledge.Base
}

func NewResourceService(kb *knowledge.Base) IResourceService {
	return &resourceService{kb: kb}
}

// GetTopics returns every knowledge base topic in its stable order.
func (rs *resourceService) GetTopics(ctx context.Context) []*dto.TopicResponse {
	topics := rs.kb.Topics()
	resp := make([]*dto.TopicResponse, 0, len(topics))
	for _, t := range topics {
		resp = append(resp, &dto.TopicResponse{
			Id:       t.ID,
			Question: t.Question,
			Answer:   t.Answer,
		})
	}
	return resp
}
