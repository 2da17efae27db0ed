package dto

import (
	"time"
)

type CreateContentRequest struct {
	NotebookId string `json:"notebook_id" validate:"required"`
	Type       string `json:"type" validate:"omitempty,oneof=text image script link"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Tags       string `json:"tags"` // comma separated
	Url        string `json:"url" validate:"omitempty,url"`
	Language   string `json:"language"`
	Source     string `json:"source"`
}

type UpdateContentRequest struct {
	Id         string  `json:"-"`
	NotebookId *string `json:"notebook_id"`
	Type       *string `json:"type" validate:"omitempty,oneof=text image script link"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Tags       *string `json:"tags"`
	Url        *string `json:"url"`
	Language   *string `json:"language"`
}

type CaptureClipboardRequest struct {
	NotebookId string `json:"notebook_id" validate:"required"`
	Tags       string `json:"tags"`
}

// DraftRequest carries clipboard data read by the client.
type DraftRequest struct {
	Text  string `json:"text"`
	Html  string `json:"html"`
	Image string `json:"image"`
}

type DraftResponse struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ClassifyRequest struct {
	Text string `json:"text" validate:"required"`
}

type ClassifyResponse struct {
	Type string `json:"type"`
}

type ContentMetadataResponse struct {
	Url      string   `json:"url,omitempty"`
	Language string   `json:"language,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Source   string   `json:"source,omitempty"`
}

type ContentResponse struct {
	Id         string                   `json:"id"`
	NotebookId string                   `json:"notebook_id"`
	Type       string                   `json:"type"`
	Title      string                   `json:"title"`
	Content    string                   `json:"content"`
	Metadata   *ContentMetadataResponse `json:"metadata,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

type ContentStatsResponse struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}
