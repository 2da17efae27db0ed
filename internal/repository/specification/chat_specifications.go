package specification

import (
	"ai-notecapture-be/internal/model"
)

type ChatByNotebookID struct {
	NotebookID string
}

func (s ChatByNotebookID) IsSatisfiedBy(m *model.ChatMessage) bool {
	return m.NotebookId == s.NotebookID
}
