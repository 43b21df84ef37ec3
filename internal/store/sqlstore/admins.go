package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/store"
)

var ErrAdminExists = errors.New("admin already exists")

// invalidCredentials mirrors the message the hosted auth service returns, so the
// login page reads the same on either backend.
func invalidCredentials() error {
	return &store.Error{Status: 400, Code: "invalid_grant", Message: "Invalid login credentials"}
}

type AdminRepository struct {
	db         *sqlx.DB
	sessionTTL time.Duration
}

func NewAdminRepository(db *sqlx.DB, sessionTTL time.Duration) *AdminRepository {
	return &AdminRepository{db: db, sessionTTL: sessionTTL}
}

func (r *AdminRepository) Create(ctx context.Context, email, password string) (*model.AdminUser, error) {
	email = normalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = r.byEmail(ctx, email)
	if err == nil {
		return nil, ErrAdminExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	admin := &model.AdminUser{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	query := `INSERT INTO admin_users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	_, err = r.db.ExecContext(ctx, query, admin.ID, admin.Email, admin.PasswordHash, admin.CreatedAt)
	if err != nil {
		return nil, err
	}

	return admin, nil
}

func (r *AdminRepository) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	admin, err := r.byEmail(ctx, normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		return nil, invalidCredentials()
	}

	return &model.Session{
		ID:        uuid.New().String(),
		Email:     admin.Email,
		ExpiresAt: time.Now().Add(r.sessionTTL),
	}, nil
}

func (r *AdminRepository) byEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	admin := &model.AdminUser{}
	err := r.db.GetContext(ctx, admin, `SELECT * FROM admin_users WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
