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

type ContentRepositoryImpl struct {
	store  kvstore.Store
	ids    idgen.Generator
	mapper *mapper.ContentItemMapper
	key    string
}

func NewContentRepository(store kvstore.Store, ids idgen.Generator) contract.ContentRepository {
	return &ContentRepositoryImpl{
		store:  store,
		ids:    ids,
		mapper: mapper.NewContentItemMapper(),
		key:    model.ContentItem{}.CollectionKey(),
	}
}

// Add prepends, so listings come back newest first.
func (r *ContentRepositoryImpl) Add(ctx context.Context, item entity.NewContentItem) (*entity.ContentItem, error) {
	m := r.mapper.NewModel(r.ids.NewID(), item, now())

	err := updateList(ctx, r.store, r.key, func(list []model.ContentItem) ([]model.ContentItem, error) {
		return append([]model.ContentItem{m}, list...), nil
	})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContentRepositoryImpl) Update(ctx context.Context, id string, patch entity.ContentItemPatch) error {
	return updateList(ctx, r.store, r.key, func(list []model.ContentItem) ([]model.ContentItem, error) {
		for i := range list {
			if list[i].Id == id {
				r.mapper.ApplyPatch(&list[i], patch)
				list[i].UpdatedAt = now()
				return list, nil
			}
		}
		return nil, errUnchanged
	})
}

func (r *ContentRepositoryImpl) Delete(ctx context.Context, id string) error {
	return updateList(ctx, r.store, r.key, func(list []model.ContentItem) ([]model.ContentItem, error) {
		for i := range list {
			if list[i].Id == id {
				return append(list[:i], list[i+1:]...), nil
			}
		}
		return nil, errUnchanged
	})
}

// DeleteByNotebook removes every item of the notebook and reports how many went.
func (r *ContentRepositoryImpl) DeleteByNotebook(ctx context.Context, notebookId string) (int, error) {
	removed := 0
	err := updateList(ctx, r.store, r.key, func(list []model.ContentItem) ([]model.ContentItem, error) {
		removed = 0
		kept := list[:0]
		for _, item := range list {
			if item.NotebookId == notebookId {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		if removed == 0 {
			return nil, errUnchanged
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (r *ContentRepositoryImpl) FindOne(ctx context.Context, id string) (*entity.ContentItem, error) {
	list, err := kvstore.LoadList[model.ContentItem](ctx, r.store, r.key)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Id == id {
			return r.mapper.ToEntity(&list[i]), nil
		}
	}
	return nil, nil
}

func (r *ContentRepositoryImpl) ListByNotebook(ctx context.Context, notebookId string) ([]*entity.ContentItem, error) {
	return r.FindAll(ctx, specification.ContentByNotebookID{NotebookID: notebookId})
}

func (r *ContentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification[model.ContentItem]) ([]*entity.ContentItem, error) {
	list, err := kvstore.LoadList[model.ContentItem](ctx, r.store, r.key)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(specification.Filter(list, specs...)), nil
}
