// Package store defines the remote row store and authentication contracts the
// site depends on, plus the backend selection made once at startup.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/templui/folio/internal/model"
)

var (
	// ErrNotConfigured is returned by Open when no backend is configured.
	ErrNotConfigured = errors.New("remote store is not configured")

	// ErrNoData is a response with neither rows nor an error.
	ErrNoData = errors.New("remote store returned no data")

	ErrNotFound = errors.New("item not found")
)

// Error is a failure reported by the backend. Message is shown to users verbatim.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Items is the portfolio_items table.
type Items interface {
	// List returns every row ordered by creation time, newest first.
	List(ctx context.Context) ([]model.Item, error)
	Insert(ctx context.Context, item *model.Item) (*model.Item, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id model.ItemID) error
}

type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
}

// Backend bundles the capabilities of one configured store. A nil *Backend
// means no store is configured and every dependent feature stays inert.
type Backend struct {
	Name  string
	Items Items
	Auth  Authenticator

	closer func() error
}

func NewBackend(name string, items Items, auth Authenticator, closer func() error) *Backend {
	return &Backend{Name: name, Items: items, Auth: auth, closer: closer}
}

func (b *Backend) Configured() bool {
	return b != nil && b.Items != nil
}

func (b *Backend) Close() error {
	if b == nil || b.closer == nil {
		return nil
	}
	return b.closer()
}

type tokenKey struct{}

// WithToken attaches the signed-in admin's access token to ctx. Backends that
// enforce row level security send it instead of the public key.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
