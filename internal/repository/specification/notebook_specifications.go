package specification

import (
	"strings"

	"ai-notecapture-be/internal/model"
)

// NotebookNameContains matches a case-insensitive substring of the name. An
// empty query matches everything.
type NotebookNameContains struct {
	Query string
}

func (s NotebookNameContains) IsSatisfiedBy(n *model.Notebook) bool {
	return containsFold(n.Name, s.Query)
}

func containsFold(s, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}
