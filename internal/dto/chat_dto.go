package dto

import (
	"time"
)

type SendChatMessageRequest struct {
	Question string `json:"question" validate:"required"`
}

type ChatMessageResponse struct {
	Id         string    `json:"id"`
	NotebookId string    `json:"notebook_id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

type SendChatMessageResponse struct {
	Question ChatMessageResponse `json:"question"`
	Answer   ChatMessageResponse `json:"answer"`
}
