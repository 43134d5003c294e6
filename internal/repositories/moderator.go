package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
)

// ModeratorReadRepository handles moderator read operations
type ModeratorReadRepository struct {
	db *sqlx.DB
}

func NewModeratorReadRepository(db *sqlx.DB) *ModeratorReadRepository {
	return &ModeratorReadRepository{db: db}
}

// GetByUsername returns the moderator with the given username, or nil if there is none.
func (r *ModeratorReadRepository) GetByUsername(ctx context.Context, username string) (*models.ModeratorDB, error) {
	const query = `
		SELECT id, first_name, last_name, username, email, password_hash, created_at
		FROM moderators
		WHERE username = $1
	`

	var mod models.ModeratorDB
	err := r.db.GetContext(ctx, &mod, query, username)

	logQuery(query, []any{username}, mod.ModeratorID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &mod, nil
}

// ModeratorWriteRepository handles moderator write operations
type ModeratorWriteRepository struct {
	db *sqlx.DB
}

func NewModeratorWriteRepository(db *sqlx.DB) *ModeratorWriteRepository {
	return &ModeratorWriteRepository{db: db}
}

// Create inserts mod and fills its id and creation time.
// A taken username yields models.ErrAlreadyExists.
func (r *ModeratorWriteRepository) Create(ctx context.Context, mod *models.ModeratorDB) error {
	const query = `
		INSERT INTO moderators (first_name, last_name, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	args := []any{mod.FirstName, mod.LastName, mod.Username, mod.Email, mod.PasswordHash}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&mod.ModeratorID, &mod.CreatedAt)

	logQuery(query, redactArg(args, 4), mod.ModeratorID, err)

	return mapPgError(err)
}
