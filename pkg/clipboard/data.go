package clipboard

import (
	"context"
	"errors"
)

// ErrNoData means nothing could be read from the clipboard, either because it
// is empty or because access was refused.
var ErrNoData = errors.New("no clipboard data available")

type Type string

const (
	TypeText  Type = "text"
	TypeImage Type = "image"
	TypeMixed Type = "mixed"
)

const (
	MimeText = "text/plain"
	MimeHTML = "text/html"
)

// Data is one clipboard snapshot. Image holds a data URL.
type Data struct {
	Text  string `json:"text,omitempty"`
	HTML  string `json:"html,omitempty"`
	Image string `json:"image,omitempty"`
	Type  Type   `json:"type"`
}

// Item is one clipboard entry with one or more MIME representations.
type Item interface {
	Types() []string
	GetType(ctx context.Context, mime string) ([]byte, error)
}

// Source is the host clipboard capability. Any call may fail, for example when
// permission is denied.
type Source interface {
	Read(ctx context.Context) ([]Item, error)
	ReadText(ctx context.Context) (string, error)
}
