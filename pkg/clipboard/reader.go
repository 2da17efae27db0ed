package clipboard

import (
	"context"
	"encoding/base64"
	"strings"

	"ai-notecapture-be/internal/pkg/logger"
)

const readerModule = "ClipboardReader"

// Reader turns a Source into typed Data.
type Reader struct {
	source Source
	logger logger.ILogger
}

func NewReader(source Source, logger logger.ILogger) *Reader {
	return &Reader{source: source, logger: logger}
}

// Read extracts text, HTML and an image from every entry, keeping the first
// successful extraction of each. A failed format is logged and skipped. When the
// structured read fails the plain text read is used instead.
func (r *Reader) Read(ctx context.Context) (*Data, error) {
	items, err := r.source.Read(ctx)
	if err != nil {
		r.logger.Warn(readerModule, "Structured clipboard read failed, falling back to text", map[string]interface{}{
			"error": err.Error(),
		})
		return r.readTextOnly(ctx)
	}

	data := &Data{}
	for _, item := range items {
		r.extract(ctx, item, data)
	}

	if data.Text == "" && data.HTML == "" && data.Image == "" {
		return nil, ErrNoData
	}

	data.Type = TypeText
	if data.Image != "" {
		data.Type = TypeImage
		if data.Text != "" {
			data.Type = TypeMixed
		}
	}
	return data, nil
}

func (r *Reader) extract(ctx context.Context, item Item, data *Data) {
	imageSeen := false
	for _, mime := range item.Types() {
		switch {
		case mime == MimeText && data.Text == "":
			if b, ok := r.get(ctx, item, mime); ok {
				data.Text = string(b)
			}
		case mime == MimeHTML && data.HTML == "":
			if b, ok := r.get(ctx, item, mime); ok {
				data.HTML = string(b)
			}
		case strings.HasPrefix(mime, "image/") && !imageSeen && data.Image == "":
			// only the entry's first image type is tried
			imageSeen = true
			if b, ok := r.get(ctx, item, mime); ok && len(b) > 0 {
				data.Image = DataURL(mime, b)
			}
		}
	}
}

func (r *Reader) get(ctx context.Context, item Item, mime string) ([]byte, bool) {
	b, err := item.GetType(ctx, mime)
	if err != nil {
		r.logger.Warn(readerModule, "Failed to read clipboard format", map[string]interface{}{
			"mime":  mime,
			"error": err.Error(),
		})
		return nil, false
	}
	return b, true
}

func (r *Reader) readTextOnly(ctx context.Context) (*Data, error) {
	text, err := r.source.ReadText(ctx)
	if err != nil {
		r.logger.Warn(readerModule, "Fallback clipboard text read failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, ErrNoData
	}
	if text == "" {
		return nil, ErrNoData
	}
	return &Data{Text: text, Type: TypeText}, nil
}

// DataURL encodes a binary payload as a base64 data URL.
func DataURL(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}
