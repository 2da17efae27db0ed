package contract

import (
	"context"

	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/internal/model"
	"ai-notecapture-be/internal/repository/specification"
)

// ContentRepository owns the "content" collection, stored newest first. It
// does not check that the referenced notebook exists.
type ContentRepository interface {
	Add(ctx context.Context, item entity.NewContentItem) (*entity.ContentItem, error)
	Update(ctx context.Context, id string, patch entity.ContentItemPatch) error
	Delete(ctx context.Context, id string) error
	DeleteByNotebook(ctx context.Context, notebookId string) (int, error)
	FindOne(ctx context.Context, id string) (*entity.ContentItem, error)
	ListByNotebook(ctx context.Context, notebookId string) ([]*entity.ContentItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification[model.ContentItem]) ([]*entity.ContentItem, error)
}
