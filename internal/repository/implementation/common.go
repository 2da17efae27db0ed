package implementation

import (
	"context"
	"errors"
	"time"

	"ai-notecapture-be/pkg/kvstore"
)

// errUnchanged aborts a list update that found nothing to change, so the
// store is not rewritten.
var errUnchanged = errors.New("unchanged")

var now = func() time.Time {
	return time.Now().UTC()
}

// updateList runs kvstore.UpdateList and treats errUnchanged as success.
func updateList[T any](ctx context.Context, store kvstore.Store, key string, fn func([]T) ([]T, error)) error {
	err := kvstore.UpdateList(ctx, store, key, fn)
	if errors.Is(err, errUnchanged) {
		return nil
	}
	return err
}
