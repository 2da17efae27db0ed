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

type NotebookRepositoryImpl struct {
	store  kvstore.Store
	ids    idgen.Generator
	mapper *mapper.NotebookMapper
	key    string
}

func NewNotebookRepository(store kvstore.Store, ids idgen.Generator) contract.NotebookRepository {
	return &NotebookRepositoryImpl{
		store:  store,
		ids:    ids,
		mapper: mapper.NewNotebookMapper(),
		key:    model.Notebook{}.CollectionKey(),
	}
}

func (r *NotebookRepositoryImpl) Create(ctx context.Context, name, icon, color string) (*entity.Notebook, error) {
	ts := now()
	m := model.Notebook{
		Id:        r.ids.NewID(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		CreatedAt: ts,
		UpdatedAt: ts,
		ItemCount: 0,
	}

	err := updateList(ctx, r.store, r.key, func(list []model.Notebook) ([]model.Notebook, error) {
		return append(list, m), nil
	})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NotebookRepositoryImpl) Update(ctx context.Context, id string, patch entity.NotebookPatch) error {
	return r.modify(ctx, id, func(n *model.Notebook) {
		r.mapper.ApplyPatch(n, patch)
	})
}

func (r *NotebookRepositoryImpl) Delete(ctx context.Context, id string) error {
	return updateList(ctx, r.store, r.key, func(list []model.Notebook) ([]model.Notebook, error) {
		for i := range list {
			if list[i].Id == id {
				return append(list[:i], list[i+1:]...), nil
			}
		}
		return nil, errUnchanged
	})
}

func (r *NotebookRepositoryImpl) IncrementItemCount(ctx context.Context, id string) error {
	return r.modify(ctx, id, func(n *model.Notebook) {
		n.ItemCount++
	})
}

// DecrementItemCount never takes the count below zero.
func (r *NotebookRepositoryImpl) DecrementItemCount(ctx context.Context, id string) error {
	return r.modify(ctx, id, func(n *model.Notebook) {
		if n.ItemCount > 0 {
			n.ItemCount--
		}
	})
}

func (r *NotebookRepositoryImpl) FindOne(ctx context.Context, id string) (*entity.Notebook, error) {
	list, err := kvstore.LoadList[model.Notebook](ctx, r.store, r.key)
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

func (r *NotebookRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification[model.Notebook]) ([]*entity.Notebook, error) {
	list, err := kvstore.LoadList[model.Notebook](ctx, r.store, r.key)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(specification.Filter(list, specs...)), nil
}

// modify applies fn to the notebook with id and refreshes UpdatedAt, all inside
// one store update.
func (r *NotebookRepositoryImpl) modify(ctx context.Context, id string, fn func(*model.Notebook)) error {
	return updateList(ctx, r.store, r.key, func(list []model.Notebook) ([]model.Notebook, error) {
		for i := range list {
			if list[i].Id == id {
				fn(&list[i])
				list[i].UpdatedAt = now()
				return list, nil
			}
		}
		return nil, errUnchanged
	})
}
