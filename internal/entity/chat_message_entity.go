package entity

import (
	"time"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Id         string
	NotebookId string
	Role       ChatRole
	Content    string
	Timestamp  time.Time
}

type NewChatMessage struct {
	NotebookId string
	Role       ChatRole
	Content    string
}
