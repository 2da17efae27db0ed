package dto

import (
	"time"
)

type CreateNotebookRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Icon  string `json:"icon"`
	Color string `json:"color" validate:"omitempty,max=32"`
}

type UpdateNotebookRequest struct {
	Id    string  `json:"-"`
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Icon  *string `json:"icon"`
	Color *string `json:"color" validate:"omitempty,max=32"`
}

type NotebookResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
