package implementation

import (
	"context"

	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/internal/mapper"
	"ai-notecapture-be/internal/model"
	"ai-notecapture-be/internal/repository/contract"
	"ai-notecapture-be/internal/repository/specification"
	"ai-notecapture-be/pkg/idgen"
	"ai-notecapture-be/pkg/kvstore"
)

type ChatMessageRepositoryImpl struct {
	store  kvstore.Store
	ids    idgen.Generator
	mapper *mapper.ChatMessageMapper
	key    string
}

func NewChatMessageRepository(store kvstore.Store, ids idgen.Generator) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		store:  store,
		ids:    ids,
		mapper: mapper.NewChatMessageMapper(),
		key:    model.ChatMessage{}.CollectionKey(),
	}
}

func (r *ChatMessageRepositoryImpl) Append(ctx context.Context, message entity.NewChatMessage) (*entity.ChatMessage, error) {
	m := r.mapper.NewModel(r.ids.NewID(), message, now())

	err := updateList(ctx, r.store, r.key, func(list []model.ChatMessage) ([]model.ChatMessage, error) {
		return append(list, m), nil
	})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChatMessageRepositoryImpl) ListByNotebook(ctx context.Context, notebookId string) ([]*entity.ChatMessage, error) {
	list, err := kvstore.LoadList[model.ChatMessage](ctx, r.store, r.key)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(specification.Filter(list, specification.Specification[model.ChatMessage](specification.ChatByNotebookID{NotebookID: notebookId}))), nil
}

func (r *ChatMessageRepositoryImpl) ClearByNotebook(ctx context.Context, notebookId string) error {
	return updateList(ctx, r.store, r.key, func(list []model.ChatMessage) ([]model.ChatMessage, error) {
		kept := make([]model.ChatMessage, 0, len(list))
		for _, msg := range list {
			if msg.NotebookId != notebookId {
				kept = append(kept, msg)
			}
		}
		if len(kept) == len(list) {
			return nil, errUnchanged
		}
		return kept, nil
	})
}
