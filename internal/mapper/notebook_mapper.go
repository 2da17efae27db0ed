package mapper

import (
	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/internal/model"
)

type NotebookMapper struct{}

func NewNotebookMapper() *NotebookMapper {
	return &NotebookMapper{}
}

func (m *NotebookMapper) ToEntity(n *model.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	return &entity.Notebook{
		Id:        n.Id,
		Name:      n.Name,
		Icon:      n.Icon,
		Color:     n.Color,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		ItemCount: n.ItemCount,
	}
}

func (m *NotebookMapper) ToModel(n *entity.Notebook) *model.Notebook {
	if n == nil {
		return nil
	}
	return &model.Notebook{
		Id:        n.Id,
		Name:      n.Name,
		Icon:      n.Icon,
		Color:     n.Color,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		ItemCount: n.ItemCount,
	}
}

func (m *NotebookMapper) ToEntities(notebooks []model.Notebook) []*entity.Notebook {
	entities := make([]*entity.Notebook, len(notebooks))
	for i := range notebooks {
		entities[i] = m.ToEntity(&notebooks[i])
	}
	return entities
}

// ApplyPatch merges the non-nil fields of patch into n.
func (m *NotebookMapper) ApplyPatch(n *model.Notebook, patch entity.NotebookPatch) {
	if patch.Name != nil {
		n.Name = *patch.Name
	}
	if patch.Icon != nil {
		n.Icon = *patch.Icon
	}
	if patch.Color != nil {
		n.Color = *patch.Color
	}
}
