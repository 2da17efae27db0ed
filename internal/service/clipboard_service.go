package service

import (
	"context"
	"sync"

	"ai-notecapture-be/internal/dto"
	"ai-notecapture-be/internal/pkg/logger"
	"ai-notecapture-be/pkg/clipboard"
	"ai-notecapture-be/pkg/contenttype"
	"ai-notecapture-be/pkg/events"
)

// TopicClipboardChanged carries monitor publications on the in-process bus.
const TopicClipboardChanged = "clipboard.changed"

type IClipboardService interface {
	Read(ctx context.Context) (*dto.ClipboardDataResponse, error)
	Interaction() *dto.ClipboardInteractionResponse
	Latest() *dto.ClipboardDataResponse
	Clear()
	Close()
}

// clipboardService owns the reader and the monitor. Monitoring lives as long
// as the service, not the request that armed it.
type clipboardService struct {
	reader    *clipboard.Reader
	monitor   *clipboard.Monitor
	publisher events.Publisher
	enabled   bool
	logger    logger.ILogger

	baseCtx     context.Context
	cancel      context.CancelFunc
	unsubscribe func()

	mu     sync.RWMutex
	latest *clipboard.Data
}

func NewClipboardService(
	reader *clipboard.Reader,
	monitor *clipboard.Monitor,
	publisher events.Publisher,
	enabled bool,
	log logger.ILogger,
) IClipboardService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &clipboardService{
		reader:    reader,
		monitor:   monitor,
		publisher: publisher,
		enabled:   enabled,
		logger:    log,
		baseCtx:   ctx,
		cancel:    cancel,
	}
	s.unsubscribe = monitor.Subscribe(s.onChange)
	return s
}

// Read is the explicit on-demand path; failures are reported to the caller.
func (s *clipboardService) Read(ctx context.Context) (*dto.ClipboardDataResponse, error) {
	data, err := s.reader.Read(ctx)
	if err != nil {
		s.logger.Warn("ClipboardService", "Clipboard read failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrClipboardRead
	}

	s.setLatest(data)
	return toClipboardResponse(data), nil
}

// Interaction records a user gesture and arms the monitor on the first one.
func (s *clipboardService) Interaction() *dto.ClipboardInteractionResponse {
	if !s.enabled {
		return &dto.ClipboardInteractionResponse{}
	}

	started := s.monitor.NotifyInteraction(s.baseCtx)
	if started {
		s.logger.Info("ClipboardService", "Clipboard monitoring started", nil)
	}
	return &dto.ClipboardInteractionResponse{
		Started:    started,
		Monitoring: s.monitor.Running(),
	}
}

func (s *clipboardService) Latest() *dto.ClipboardDataResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil
	}
	return toClipboardResponse(s.latest)
}

func (s *clipboardService) Clear() {
	s.setLatest(nil)
}

func (s *clipboardService) Close() {
	s.unsubscribe()
	s.cancel()
	s.monitor.Stop()
}

func (s *clipboardService) onChange(data *clipboard.Data) {
	s.setLatest(data)

	if s.publisher == nil {
		return
	}
	res := toClipboardResponse(data)
	err := s.publisher.Publish(s.baseCtx, events.New(events.ClipboardChanged, map[string]interface{}{
		"text":           res.Text,
		"html":           res.Html,
		"image":          res.Image,
		"type":           res.Type,
		"suggested_type": res.SuggestedType,
	}))
	if err != nil {
		s.logger.Warn("ClipboardService", "Failed to forward clipboard change", map[string]interface{}{"error": err.Error()})
	}
}

func (s *clipboardService) setLatest(data *clipboard.Data) {
	s.mu.Lock()
	s.latest = data
	s.mu.Unlock()
}

func toClipboardResponse(data *clipboard.Data) *dto.ClipboardDataResponse {
	res := &dto.ClipboardDataResponse{
		Text:  data.Text,
		Html:  data.HTML,
		Image: data.Image,
		Type:  string(data.Type),
	}
	if data.Text != "" {
		res.SuggestedType = string(contenttype.Classify(data.Text))
	}
	return res
}
