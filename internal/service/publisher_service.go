package service

import (
	"context"

	"ai-notecapture-be/internal/pkg/logger"
	"ai-notecapture-be/pkg/events"
)

type IPublisherService interface {
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

// publisherService fans an event out to every transport. Delivery problems
// are logged and never fail the operation that produced the event.
type publisherService struct {
	publishers []events.Publisher
	logger     logger.ILogger
}

func NewPublisherService(log logger.ILogger, publishers ...events.Publisher) IPublisherService {
	active := make([]events.Publisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &publisherService{publishers: active, logger: log}
}

func (s *publisherService) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	event := events.New(eventType, data)
	for _, p := range s.publishers {
		if err := p.Publish(ctx, event); err != nil {
			s.logger.Warn("PublisherService", "Failed to publish event", map[string]interface{}{
				"type":  eventType,
				"error": err.Error(),
			})
		}
	}
}
