package service

import (
	"context"
	"sync"
	"testing"

	"ai-notecapture-be/internal/dto"
	"ai-notecapture-be/internal/pkg/logger"
	"ai-notecapture-be/internal/repository/contract"
	"ai-notecapture-be/internal/repository/implementation"
	"ai-notecapture-be/pkg/events"
	"ai-notecapture-be/pkg/idgen"
	"ai-notecapture-be/pkg/kvstore"
	"ai-notecapture-be/pkg/llm"

	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

// fakeLLM answers Generate with a fixed reply or error. block, when set, holds
// Generate until it is closed.
type fakeLLM struct {
	mu      sync.Mutex
	reply   string
	err     error
	block   chan struct{}
	entered chan struct{}
	prompts []string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content, options...)
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	block, entered := f.block, f.entered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}
	return f.reply, f.err
}

type fixture struct {
	ctx       context.Context
	notebooks contract.NotebookRepository
	content   contract.ContentRepository
	chat      contract.ChatMessageRepository
	events    *recordingPublisher
	publisher IPublisherService
	log       logger.ILogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	ids := idgen.NewSequenceGenerator("id")
	rec := &recordingPublisher{}
	log := logger.NewNopLogger()
	return &fixture{
		ctx:       context.Background(),
		notebooks: implementation.NewNotebookRepository(store, ids),
		content:   implementation.NewContentRepository(store, ids),
		chat:      implementation.NewChatMessageRepository(store, ids),
		events:    rec,
		publisher: NewPublisherService(log, rec),
		log:       log,
	}
}

func (f *fixture) notebookService() INotebookService {
	return NewNotebookService(f.notebooks, f.content, f.chat, f.publisher, f.log)
}

func (f *fixture) contentService(reader ClipboardReader) IContentService {
	return NewContentService(f.notebooks, f.content, reader, f.publisher, f.log)
}

func (f *fixture) chatService(provider llm.LLMProvider) IChatService {
	return NewChatService(f.notebooks, f.content, f.chat, provider, f.publisher, f.log)
}

func (f *fixture) createNotebook(t *testing.T, name string) *dto.NotebookResponse {
	t.Helper()
	nb, err := f.notebookService().Create(f.ctx, &dto.CreateNotebookRequest{Name: name})
	require.NoError(t, err)
	return nb
}

func (f *fixture) addContent(t *testing.T, notebookId, title, content string) *dto.ContentResponse {
	t.Helper()
	item, err := f.contentService(nil).Create(f.ctx, &dto.CreateContentRequest{
		NotebookId: notebookId,
		Title:      title,
		Content:    content,
	})
	require.NoError(t, err)
	return item
}

func strPtr(s string) *string { return &s }
