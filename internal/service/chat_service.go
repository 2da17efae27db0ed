package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ai-notecapture-be/internal/constant"
	"ai-notecapture-be/internal/dto"
	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/internal/pkg/logger"
	"ai-notecapture-be/internal/pkg/serverutils"
	"ai-notecapture-be/internal/repository/contract"
	"ai-notecapture-be/pkg/events"
	"ai-notecapture-be/pkg/llm"
)

type IChatService interface {
	SendMessage(ctx context.Context, notebookId string, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error)
	GetHistory(ctx context.Context, notebookId string) ([]*dto.ChatMessageResponse, error)
	ClearHistory(ctx context.Context, notebookId string) error
}

type chatService struct {
	notebookRepo     contract.NotebookRepository
	contentRepo      contract.ContentRepository
	chatRepo         contract.ChatMessageRepository
	llmProvider      llm.LLMProvider
	llmOptions       []llm.Option
	publisherService IPublisherService
	logger           logger.ILogger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewChatService(
	notebookRepo contract.NotebookRepository,
	contentRepo contract.ContentRepository,
	chatRepo contract.ChatMessageRepository,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	log logger.ILogger,
	llmOptions ...llm.Option,
) IChatService {
	return &chatService{
		notebookRepo:     notebookRepo,
		contentRepo:      contentRepo,
		chatRepo:         chatRepo,
		llmProvider:      llmProvider,
		llmOptions:       llmOptions,
		publisherService: publisherService,
		logger:           log,
		inFlight:         make(map[string]struct{}),
	}
}

// SendMessage stores the question, asks the model once with the notebook's
// content as context and stores the answer. When the model fails the question
// stays in the history and no answer is written.
func (s *chatService) SendMessage(ctx context.Context, notebookId string, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, serverutils.NewBadRequestError("Question is required")
	}

	notebook, err := s.notebookRepo.FindOne(ctx, notebookId)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, ErrNotebookNotFound
	}

	if !s.acquire(notebookId) {
		return nil, ErrChatInFlight
	}
	defer s.release(notebookId)

	userMsg, err := s.chatRepo.Append(ctx, entity.NewChatMessage{
		NotebookId: notebookId,
		Role:       entity.ChatRoleUser,
		Content:    question,
	})
	if err != nil {
		return nil, err
	}

	items, err := s.contentRepo.ListByNotebook(ctx, notebookId)
	if err != nil {
		return nil, err
	}

	prompt := constant.BuildNotebookChatPrompt(notebook.Name, contextItems(items), question)

	answer, err := s.llmProvider.Generate(ctx, prompt, s.llmOptions...)
	if err != nil {
		s.logger.Error("ChatService", "Completion failed", map[string]interface{}{
			"notebook_id": notebookId,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	assistantMsg, err := s.chatRepo.Append(ctx, entity.NewChatMessage{
		NotebookId: notebookId,
		Role:       entity.ChatRoleAssistant,
		Content:    answer,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ChatService", "Question answered", map[string]interface{}{
		"notebook_id":   notebookId,
		"context_items": len(items),
		"prompt_chars":  len(prompt),
	})
	s.publisherService.Publish(ctx, events.ChatAnswered, map[string]interface{}{
		"notebook_id": notebookId,
		"message_id":  assistantMsg.Id,
	})

	return &dto.SendChatMessageResponse{
		Question: toChatMessageResponse(userMsg),
		Answer:   toChatMessageResponse(assistantMsg),
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, notebookId string) ([]*dto.ChatMessageResponse, error) {
	if err := s.requireNotebook(ctx, notebookId); err != nil {
		return nil, err
	}

	messages, err := s.chatRepo.ListByNotebook(ctx, notebookId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		res := toChatMessageResponse(msg)
		result = append(result, &res)
	}
	return result, nil
}

func (s *chatService) ClearHistory(ctx context.Context, notebookId string) error {
	if err := s.requireNotebook(ctx, notebookId); err != nil {
		return err
	}
	if err := s.chatRepo.ClearByNotebook(ctx, notebookId); err != nil {
		return err
	}

	s.publisherService.Publish(ctx, events.ChatCleared, map[string]interface{}{"notebook_id": notebookId})
	return nil
}

func (s *chatService) requireNotebook(ctx context.Context, notebookId string) error {
	notebook, err := s.notebookRepo.FindOne(ctx, notebookId)
	if err != nil {
		return err
	}
	if notebook == nil {
		return ErrNotebookNotFound
	}
	return nil
}

// acquire allows one outstanding completion per notebook.
func (s *chatService) acquire(notebookId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[notebookId]; busy {
		return false
	}
	s.inFlight[notebookId] = struct{}{}
	return true
}

func (s *chatService) release(notebookId string) {
	s.mu.Lock()
	delete(s.inFlight, notebookId)
	s.mu.Unlock()
}

func contextItems(items []*entity.ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprintf(constant.ContextItemFormat, item.Title, item.Type, item.Content))
	}
	return out
}

func toChatMessageResponse(msg *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:         msg.Id,
		NotebookId: msg.NotebookId,
		Role:       string(msg.Role),
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
	}
}
