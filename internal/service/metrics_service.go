package service

import (
	"context"
	"encoding/json"
	"sync"

	"a11y-advocate-be/internal/pkg/logger"
	"a11y-advocate-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IMetricsService consumes resolution events off the in-process bus and
// keeps per-provenance counters for the diagnostics panel.
type IMetricsService interface {
	Consume(ctx context.Context) error
	Snapshot() map[string]int64
}

type metricsService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger

	mu       sync.Mutex
	counters map[string]int64
}

func NewMetricsService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IMetricsService {
	return &metricsService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
		counters:  make(map[string]int64),
	}
}

func (ms *metricsService) Consume(ctx context.Context) error {
	messages, err := ms.pubSub.Subscribe(ctx, ms.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ms.processMessage(msg)
		}
	}()

	return nil
}

func (ms *metricsService) processMessage(msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		ms.logger.Warn("metrics", "Failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads are never retriable
		return
	}

	provenance, _ := evt.Data["provenance"].(string)
	if provenance != "" {
		ms.mu.Lock()
		ms.counters[provenance]++
		ms.mu.Unlock()
	}

	msg.Ack()
}

// Snapshot returns a copy of the counters by provenance.
func (ms *metricsService) Snapshot() map[string]int64 {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make(map[string]int64, len(ms.counters))
	for k, v := range ms.counters {
		out[k] = v
	}
	return out
}
