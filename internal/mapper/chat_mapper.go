package mapper

import (
	"time"

	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/internal/model"
)

type ChatMessageMapper struct{}

func NewChatMessageMapper() *ChatMessageMapper {
	return &ChatMessageMapper{}
}

func (m *ChatMessageMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:         c.Id,
		NotebookId: c.NotebookId,
		Role:       entity.ChatRole(c.Role),
		Content:    c.Content,
		Timestamp:  c.Timestamp,
	}
}

func (m *ChatMessageMapper) ToEntities(messages []model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i := range messages {
		entities[i] = m.ToEntity(&messages[i])
	}
	return entities
}

func (m *ChatMessageMapper) NewModel(id string, in entity.NewChatMessage, now time.Time) model.ChatMessage {
	return model.ChatMessage{
		Id:         id,
		NotebookId: in.NotebookId,
		Role:       string(in.Role),
		Content:    in.Content,
		Timestamp:  now,
	}
}
