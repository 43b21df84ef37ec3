// Package admincache keeps each admin session's copy of the portfolio rows.
// The copy is always replaced wholesale, never patched.
package admincache

import (
	"context"
	"errors"

	"github.com/templui/folio/internal/model"
)

var ErrNotFound = errors.New("item not in cache")

type Cache interface {
	// Replace swaps the session's rows for items.
	Replace(ctx context.Context, sessionID string, items []model.Item) error
	// Items returns the cached rows; ok is false when nothing was cached yet.
	Items(ctx context.Context, sessionID string) (items []model.Item, ok bool, err error)
	Drop(ctx context.Context, sessionID string) error
}

// Find looks an item up in the session's cached rows only.
func Find(ctx context.Context, c Cache, sessionID string, id model.ItemID) (*model.Item, error) {
	items, _, err := c.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}
