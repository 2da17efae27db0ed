package contract

import (
	"context"

	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/internal/model"
	"ai-notecapture-be/internal/repository/specification"
)

// NotebookRepository owns the "notebooks" collection. Operations on a missing
// id are silent no-ops; only store failures are returned.
type NotebookRepository interface {
	Create(ctx context.Context, name, icon, color string) (*entity.Notebook, error)
	Update(ctx context.Context, id string, patch entity.NotebookPatch) error
	Delete(ctx context.Context, id string) error
	IncrementItemCount(ctx context.Context, id string) error
	DecrementItemCount(ctx context.Context, id string) error
	FindOne(ctx context.Context, id string) (*entity.Notebook, error)
	FindAll(ctx context.Context, specs ...specification.Specification[model.Notebook]) ([]*entity.Notebook, error)
}
