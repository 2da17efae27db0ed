package model

import (
	"time"
)

type ContentMetadata struct {
	Url      string   `json:"url,omitempty"`
	Language string   `json:"language,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Source   string   `json:"source,omitempty"`
}

type ContentItem struct {
	Id         string           `json:"id"`
	NotebookId string           `json:"notebookId"`
	Type       string           `json:"type"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	Metadata   *ContentMetadata `json:"metadata,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func (ContentItem) CollectionKey() string {
	return "content"
}
