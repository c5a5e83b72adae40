// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/beetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, is_anonymous, created_at, updated_at`

const createUserSQL = `
INSERT INTO users (id, is_anonymous, created_at, updated_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const touchUserSQL = `
UPDATE users SET updated_at = now()
WHERE id = $1`

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(querier.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	createdAt, updatedAt := u.CreatedAt, u.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	created, err := scanUser(querier.QueryRow(ctx, createUserSQL,
		u.ID, u.IsAnonymous, createdAt.UTC().Truncate(time.Microsecond), updatedAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// Touch bumps updated_at so an active anonymous user survives cleanup.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, touchUserSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteStaleAnonymous removes anonymous users not seen since before.
// Their sessions and words go with them by cascade.
func (r *Repo) DeleteStaleAnonymous(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psql.
		Delete("users").
		Where(sq.Eq{"is_anonymous": true}).
		Where(sq.Lt{"updated_at": before.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete stale users query: %w", err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete stale anonymous users: %w", err)
	}
	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.IsAnonymous, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
