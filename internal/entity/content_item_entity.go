package entity

import (
	"time"

	"ai-notecapture-be/pkg/contenttype"
)

type ContentMetadata struct {
	Url      string
	Language string
	Tags     []string
	Source   string
}

type ContentItem struct {
	Id         string
	NotebookId string
	Type       contenttype.Kind
	Title      string
	Content    string // raw text, or a data URL for images
	Metadata   *ContentMetadata
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewContentItem is a content item before the repository assigns its id and timestamps.
type NewContentItem struct {
	NotebookId string
	Type       contenttype.Kind
	Title      string
	Content    string
	Metadata   *ContentMetadata
}

type ContentItemPatch struct {
	NotebookId *string
	Type       *contenttype.Kind
	Title      *string
	Content    *string
	Metadata   *ContentMetadata
}
