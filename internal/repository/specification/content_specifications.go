package specification

import (
	"ai-notecapture-be/internal/model"
)

type ContentByNotebookID struct {
	NotebookID string
}

func (s ContentByNotebookID) IsSatisfiedBy(c *model.ContentItem) bool {
	return c.NotebookId == s.NotebookID
}

// ContentByType matches the type tag; an empty Type matches everything.
type ContentByType struct {
	Type string
}

func (s ContentByType) IsSatisfiedBy(c *model.ContentItem) bool {
	return s.Type == "" || c.Type == s.Type
}

// ContentMatches searches title and content, case-insensitively.
type ContentMatches struct {
	Query string
}

func (s ContentMatches) IsSatisfiedBy(c *model.ContentItem) bool {
	return containsFold(c.Title, s.Query) || containsFold(c.Content, s.Query)
}
