package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/store"
)

// fakeItems is an in-memory row store with injectable failures.
type fakeItems struct {
	mu      sync.Mutex
	rows    []model.Item
	nextID  int
	inserts []model.Item
	updates []model.Item
	tokens  []string

	listErr   error
	insertErr error
	updateErr error
	deleteErr error
	nullList  bool

	insertGate chan struct{}
}

func (f *fakeItems) List(ctx context.Context) ([]model.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, store.Token(ctx))

	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.nullList {
		return nil, store.ErrNoData
	}
	out := slices.Clone(f.rows)
	slices.SortStableFunc(out, func(a, b model.Item) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (f *fakeItems) Insert(ctx context.Context, item *model.Item) (*model.Item, error) {
	if f.insertGate != nil {
		<-f.insertGate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, store.Token(ctx))

	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.nextID++
	created := *item
	created.ID = model.ItemID(fmt.Sprint(f.nextID))
	created.CreatedAt = time.Date(2025, 1, 1, 0, f.nextID, 0, 0, time.UTC)
	f.rows = append(f.rows, created)
	f.inserts = append(f.inserts, created)
	return &created, nil
}

func (f *fakeItems) Update(ctx context.Context, item *model.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.rows {
		if f.rows[i].ID == item.ID {
			updated := *item
			updated.CreatedAt = f.rows[i].CreatedAt
			f.rows[i] = updated
			f.updates = append(f.updates, updated)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeItems) Delete(ctx context.Context, id model.ItemID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.rows = slices.DeleteFunc(f.rows, func(it model.Item) bool { return it.ID == id })
	return nil
}

func (f *fakeItems) insertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserts)
}

type fakeAuth struct {
	email, password string
}

func (a *fakeAuth) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	if email != a.email || password != a.password {
		return nil, &store.Error{Status: 400, Code: "invalid_grant", Message: "Invalid login credentials"}
	}
	return &model.Session{ID: "session-1", Email: email, AccessToken: "user-token"}, nil
}

func row(id string, c model.Category, title string, minute int) model.Item {
	return model.Item{
		ID:        model.ItemID(id),
		Type:      c,
		Title:     title,
		CreatedAt: time.Date(2024, 6, 1, 0, minute, 0, 0, time.UTC),
	}
}
