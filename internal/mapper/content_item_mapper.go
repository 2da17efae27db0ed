package mapper

import (
	"time"

	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/internal/model"
	"ai-notecapture-be/pkg/contenttype"
)

type ContentItemMapper struct{}

func NewContentItemMapper() *ContentItemMapper {
	return &ContentItemMapper{}
}

func (m *ContentItemMapper) ToEntity(c *model.ContentItem) *entity.ContentItem {
	if c == nil {
		return nil
	}
	return &entity.ContentItem{
		Id:         c.Id,
		NotebookId: c.NotebookId,
		Type:       contenttype.Kind(c.Type),
		Title:      c.Title,
		Content:    c.Content,
		Metadata:   m.metadataToEntity(c.Metadata),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *ContentItemMapper) ToEntities(items []model.ContentItem) []*entity.ContentItem {
	entities := make([]*entity.ContentItem, len(items))
	for i := range items {
		entities[i] = m.ToEntity(&items[i])
	}
	return entities
}

func (m *ContentItemMapper) NewModel(id string, in entity.NewContentItem, now time.Time) model.ContentItem {
	return model.ContentItem{
		Id:         id,
		NotebookId: in.NotebookId,
		Type:       string(in.Type),
		Title:      in.Title,
		Content:    in.Content,
		Metadata:   m.metadataToModel(in.Metadata),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (m *ContentItemMapper) ApplyPatch(c *model.ContentItem, patch entity.ContentItemPatch) {
	if patch.NotebookId != nil {
		c.NotebookId = *patch.NotebookId
	}
	if patch.Type != nil {
		c.Type = string(*patch.Type)
	}
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Content != nil {
		c.Content = *patch.Content
	}
	if patch.Metadata != nil {
		c.Metadata = m.metadataToModel(patch.Metadata)
	}
}

func (m *ContentItemMapper) metadataToEntity(md *model.ContentMetadata) *entity.ContentMetadata {
	if md == nil {
		return nil
	}
	return &entity.ContentMetadata{
		Url:      md.Url,
		Language: md.Language,
		Tags:     append([]string(nil), md.Tags...),
		Source:   md.Source,
	}
}

func (m *ContentItemMapper) metadataToModel(md *entity.ContentMetadata) *model.ContentMetadata {
	if md == nil {
		return nil
	}
	return &model.ContentMetadata{
		Url:      md.Url,
		Language: md.Language,
		Tags:     append([]string(nil), md.Tags...),
		Source:   md.Source,
	}
}
