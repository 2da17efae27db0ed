package model

import (
	"time"
)

type ChatMessage struct {
	Id         string    `json:"id"`
	NotebookId string    `json:"notebookId"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

func (ChatMessage) CollectionKey() string {
	return "chat-messages"
}
