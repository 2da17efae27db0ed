package contract

import (
	"context"

	"ai-notecapture-be/internal/entity"
)

// ChatMessageRepository owns the "chat-messages" collection, stored oldest first.
type ChatMessageRepository interface {
	Append(ctx context.Context, message entity.NewChatMessage) (*entity.ChatMessage, error)
	ListByNotebook(ctx context.Context, notebookId string) ([]*entity.ChatMessage, error)
	ClearByNotebook(ctx context.Context, notebookId string) error
}
