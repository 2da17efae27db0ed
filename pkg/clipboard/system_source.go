package clipboard

import (
	"context"
	"errors"
	"fmt"

	hostclipboard "github.com/atotto/clipboard"
)

// ErrUnavailable is returned by sources that have no clipboard to talk to.
var ErrUnavailable = errors.New("clipboard unavailable")

// SystemSource reads the host clipboard through the platform's clipboard tool
// (xclip, xsel or wl-paste on Linux, pbpaste on macOS). Only plain text is
// exposed; the entry carries a single text/plain representation.
type SystemSource struct{}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (s *SystemSource) Read(ctx context.Context) ([]Item, error) {
	text, err := s.ReadText(ctx)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return []Item{}, nil
	}

	item := &snapshotItem{payloads: make(map[string][]byte)}
	item.add(MimeText, []byte(text))
	return []Item{item}, nil
}

func (s *SystemSource) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if hostclipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := hostclipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return text, nil
}

// DisabledSource fails every read. It stands in for the host clipboard on
// headless deployments.
type DisabledSource struct{}

func (DisabledSource) Read(context.Context) ([]Item, error) {
	return nil, ErrUnavailable
}

func (DisabledSource) ReadText(context.Context) (string, error) {
	return "", ErrUnavailable
}

// StaticSource serves a fixed snapshot. Payloads are keyed by MIME type and
// exposed as one entry in the given order.
type StaticSource struct {
	item *snapshotItem
}

func NewStaticSource(mimes []string, payloads map[string][]byte) *StaticSource {
	item := &snapshotItem{payloads: make(map[string][]byte)}
	for _, mime := range mimes {
		if b, ok := payloads[mime]; ok {
			item.add(mime, b)
		}
	}
	return &StaticSource{item: item}
}

func (s *StaticSource) Read(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.item.types) == 0 {
		return []Item{}, nil
	}
	return []Item{s.item}, nil
}

func (s *StaticSource) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(s.item.payloads[MimeText]), nil
}

type snapshotItem struct {
	types    []string
	payloads map[string][]byte
}

func (i *snapshotItem) add(mime string, payload []byte) {
	i.types = append(i.types, mime)
	i.payloads[mime] = payload
}

func (i *snapshotItem) Types() []string {
	return i.types
}

func (i *snapshotItem) GetType(_ context.Context, mime string) ([]byte, error) {
	b, ok := i.payloads[mime]
	if !ok {
		return nil, fmt.Errorf("clipboard entry has no %s representation", mime)
	}
	return b, nil
}
