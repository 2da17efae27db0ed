package model

import (
	"time"
)

// Notebook is the stored JSON record of a notebook.
type Notebook struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ItemCount int       `json:"itemCount"`
}

func (Notebook) CollectionKey() string {
	return "notebooks"
}
