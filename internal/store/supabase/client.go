// Package supabase talks to a Supabase project through the community
// PostgREST and GoTrue clients.
package supabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/postgrest-go"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/store"
)

type Client struct {
	baseURL string
	apiKey  string
	table   string
	timeout time.Duration
}

func New(baseURL, apiKey, table string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		table:   table,
		timeout: timeout,
	}
}

// itemPayload is the writable subset of a row. id and created_at are store-assigned.
type itemPayload struct {
	Type            model.Category `json:"type"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	DescriptionHTML string         `json:"description_html"`
	URL             *string        `json:"url"`
}

func payloadOf(item *model.Item) itemPayload {
	return itemPayload{
		Type:            item.Type,
		Title:           item.Title,
		Description:     item.Description,
		DescriptionHTML: item.DescriptionHTML,
		URL:             item.URL,
	}
}

// rest builds a PostgREST client for one call. The signed-in admin's token
// from ctx replaces the public key as bearer so row level security applies.
func (c *Client) rest(ctx context.Context) (*postgrest.Client, *transport, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	bearer := store.Token(ctx)
	if bearer == "" {
		bearer = c.apiKey
	}

	rt := newTransport(ctx)
	client := postgrest.NewClient(c.baseURL+"/rest/v1", "", map[string]string{
		"apikey":        c.apiKey,
		"Authorization": "Bearer " + bearer,
	})
	if client.Transport != nil {
		client.Transport.Parent = rt
	}
	return client, rt, cancel
}

func (c *Client) auth(ctx context.Context) (gotrue.Client, *transport, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	rt := newTransport(ctx)
	client := gotrue.New("", c.apiKey).
		WithCustomGoTrueURL(c.baseURL + "/auth/v1").
		WithClient(rt.httpClient(c.timeout))
	return client, rt, cancel
}

func (c *Client) List(ctx context.Context) ([]model.Item, error) {
	client, rt, cancel := c.rest(ctx)
	defer cancel()

	var items []model.Item
	_, err := client.From(c.table).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&items)
	if err != nil {
		return nil, rt.failed(err)
	}
	if items == nil {
		return nil, store.ErrNoData
	}
	return items, nil
}

func (c *Client) Insert(ctx context.Context, item *model.Item) (*model.Item, error) {
	client, rt, cancel := c.rest(ctx)
	defer cancel()

	var rows []model.Item
	_, err := client.From(c.table).
		Insert(payloadOf(item), false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, rt.failed(err)
	}
	if len(rows) == 0 {
		return nil, store.ErrNoData
	}
	return &rows[0], nil
}

func (c *Client) Update(ctx context.Context, item *model.Item) error {
	if item.ID == "" {
		return fmt.Errorf("update: %w", store.ErrNotFound)
	}

	client, rt, cancel := c.rest(ctx)
	defer cancel()

	var rows []model.Item
	_, err := client.From(c.table).
		Update(payloadOf(item), "representation", "").
		Eq("id", item.ID.String()).
		ExecuteTo(&rows)
	if err != nil {
		return rt.failed(err)
	}
	if len(rows) == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete is idempotent: deleting a missing id succeeds, as PostgREST reports it.
func (c *Client) Delete(ctx context.Context, id model.ItemID) error {
	if id == "" {
		return fmt.Errorf("delete: %w", store.ErrNotFound)
	}

	client, rt, cancel := c.rest(ctx)
	defer cancel()

	_, _, err := client.From(c.table).
		Delete("minimal", "").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return rt.failed(err)
	}
	return nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	client, rt, cancel := c.auth(ctx)
	defer cancel()

	res, err := client.Token(types.TokenRequest{
		GrantType: "password",
		Email:     email,
		Password:  password,
	})
	if err != nil {
		return nil, rt.failed(err)
	}
	if res == nil || res.AccessToken == "" {
		return nil, store.ErrNoData
	}

	sessionEmail := res.User.Email
	if sessionEmail == "" {
		sessionEmail = email
	}

	return &model.Session{
		ID:          uuid.New().String(),
		Email:       sessionEmail,
		AccessToken: res.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(res.ExpiresIn) * time.Second),
	}, nil
}
