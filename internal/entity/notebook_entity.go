package entity

import (
	"time"
)

type Notebook struct {
	Id        string
	Name      string
	Icon      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
	ItemCount int
}

// NotebookPatch holds the fields to change; nil means unchanged.
type NotebookPatch struct {
	Name  *string
	Icon  *string
	Color *string
}
