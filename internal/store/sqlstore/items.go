// Package sqlstore is a self-hosted backend for the portfolio rows and admin
// accounts, on sqlite or postgres.
package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/store"
)

type ItemRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db, now: time.Now}
}

func (r *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	items := []model.Item{}
	query := `SELECT id, type, title, description, description_html, url, created_at
	          FROM portfolio_items ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) Insert(ctx context.Context, item *model.Item) (*model.Item, error) {
	created := *item
	created.ID = model.ItemID(uuid.New().String())
	created.CreatedAt = r.now().UTC()

	query := `INSERT INTO portfolio_items (id, type, title, description, description_html, url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		created.ID,
		created.Type,
		created.Title,
		created.Description,
		created.DescriptionHTML,
		created.URL,
		created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *model.Item) error {
	query := `UPDATE portfolio_items
	          SET type = $1, title = $2, description = $3, description_html = $4, url = $5
	          WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		item.Type,
		item.Title,
		item.Description,
		item.DescriptionHTML,
		item.URL,
		item.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return store.ErrNotFound
	}

	return nil
}

// Delete succeeds for ids that no longer exist, matching the REST backend.
func (r *ItemRepository) Delete(ctx context.Context, id model.ItemID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	return err
}
