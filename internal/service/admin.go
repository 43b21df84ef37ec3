package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/templui/folio/internal/admincache"
	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/richtext"
	"github.com/templui/folio/internal/store"
	"github.com/templui/folio/internal/validation"
)

var (
	ErrItemNotFound = errors.New("item not found, refresh the list")
	ErrNoItemID     = errors.New("item id is required")
)

// RefreshError reports that sign-in or a mutation succeeded but reloading the
// list afterwards failed. The cache still holds the previous rows.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return e.Err.Error()
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// AdminService is the login-gated editor. Every mutation is followed by a full
// reload of the session's cached rows.
type AdminService struct {
	backend *store.Backend
	cache   admincache.Cache
	flight  singleflight.Group
}

func NewAdminService(backend *store.Backend, cache admincache.Cache) *AdminService {
	return &AdminService{
		backend: backend,
		cache:   cache,
	}
}

func (s *AdminService) Enabled() bool {
	return s.backend.Configured() && s.backend.Auth != nil
}

func (s *AdminService) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	if !s.Enabled() {
		return nil, store.ErrNotConfigured
	}

	email = strings.TrimSpace(email)
	err := validation.Required(
		validation.Field{Name: "email", Value: email},
		validation.Field{Name: "password", Value: password},
	)
	if err != nil {
		return nil, err
	}

	session, err := s.backend.Auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	slog.Info("admin signed in", "email", session.Email, "backend", s.backend.Name)

	_, err = s.RefreshCache(ctx, session)
	if err != nil {
		return session, &RefreshError{Err: err}
	}
	return session, nil
}

func (s *AdminService) SignOut(ctx context.Context, session *model.Session) error {
	return s.cache.Drop(ctx, session.ID)
}

// RefreshCache reloads all rows and replaces the session's cache. On failure
// the previous cache is left as it was.
func (s *AdminService) RefreshCache(ctx context.Context, session *model.Session) ([]model.Item, error) {
	if !s.backend.Configured() {
		return nil, store.ErrNotConfigured
	}

	items, err := s.backend.Items.List(store.WithToken(ctx, session.AccessToken))
	if err != nil {
		slog.Warn("admin cache refresh failed", "error", err, "session", session.ID)
		return nil, err
	}

	err = s.cache.Replace(ctx, session.ID, items)
	if err != nil {
		return nil, fmt.Errorf("failed to store cache: %w", err)
	}
	return items, nil
}

// Items returns the cached rows, loading them on first use.
func (s *AdminService) Items(ctx context.Context, session *model.Session) ([]model.Item, error) {
	items, ok, err := s.cache.Items(ctx, session.ID)
	if err != nil {
		slog.Warn("admin cache read failed", "error", err, "session", session.ID)
	}
	if ok && err == nil {
		return items, nil
	}
	return s.RefreshCache(ctx, session)
}

// Submit creates the item when form has no id and updates it otherwise. The
// plain description is always recomputed from the rich body. Titles and URLs
// are not validated. Identical submissions that overlap in one session share
// a single store call.
func (s *AdminService) Submit(ctx context.Context, session *model.Session, form model.ItemForm) error {
	if !s.backend.Configured() {
		return store.ErrNotConfigured
	}

	item, err := itemFromForm(form)
	if err != nil {
		return err
	}

	key := submissionKey(session.ID, form)
	_, err, shared := s.flight.Do(key, func() (any, error) {
		tctx := store.WithToken(ctx, session.AccessToken)
		if item.ID != "" {
			return nil, s.backend.Items.Update(tctx, item)
		}
		created, err := s.backend.Items.Insert(tctx, item)
		if err == nil {
			slog.Info("portfolio item created", "id", created.ID, "type", created.Type)
		}
		return created, err
	})
	if err != nil {
		return err
	}
	if shared {
		slog.Debug("duplicate submission collapsed", "session", session.ID)
	}

	_, err = s.RefreshCache(ctx, session)
	if err != nil {
		return &RefreshError{Err: err}
	}
	return nil
}

// BeginEdit fills a form from the session's cached rows. It never fetches.
func (s *AdminService) BeginEdit(ctx context.Context, session *model.Session, id model.ItemID) (model.ItemForm, error) {
	item, err := admincache.Find(ctx, s.cache, session.ID, id)
	if errors.Is(err, admincache.ErrNotFound) {
		return model.ItemForm{}, ErrItemNotFound
	}
	if err != nil {
		return model.ItemForm{}, err
	}
	return model.FormFromItem(*item), nil
}

func (s *AdminService) Delete(ctx context.Context, session *model.Session, id model.ItemID) error {
	if !s.backend.Configured() {
		return store.ErrNotConfigured
	}
	if id == "" {
		return ErrNoItemID
	}

	err := s.backend.Items.Delete(store.WithToken(ctx, session.AccessToken), id)
	if err != nil {
		return err
	}
	slog.Info("portfolio item deleted", "id", id)

	_, err = s.RefreshCache(ctx, session)
	if err != nil {
		return &RefreshError{Err: err}
	}
	return nil
}

// CancelEdit discards the form's state without touching the store.
func (s *AdminService) CancelEdit(c model.Category) model.ItemForm {
	return model.EmptyForm(c)
}

func itemFromForm(form model.ItemForm) (*model.Item, error) {
	if !form.Type.Valid() {
		return nil, fmt.Errorf("unknown category %q", form.Type)
	}

	body := form.Body
	if form.Format == model.FormatMarkdown {
		rendered, err := richtext.FromMarkdown(body)
		if err != nil {
			return nil, fmt.Errorf("failed to render markdown: %w", err)
		}
		body = rendered
	}
	body = richtext.Sanitize(body)

	item := &model.Item{
		ID:              form.ID,
		Type:            form.Type,
		Title:           form.Title,
		Description:     richtext.Strip(body),
		DescriptionHTML: body,
	}
	if u := strings.TrimSpace(form.URL); u != "" {
		item.URL = &u
	}
	return item, nil
}

func submissionKey(sessionID string, form model.ItemForm) string {
	return strings.Join([]string{
		sessionID,
		string(form.ID),
		string(form.Type),
		form.Title,
		form.URL,
		form.Format,
		form.Body,
	}, "\x00")
}
