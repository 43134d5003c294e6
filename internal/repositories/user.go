package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
)

const userColumns = `id, first_name, last_name, username, email, password_hash, account_type, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewUserReadRepository creates a reader that joins the transaction found by
// txGetter. Inside a transaction the selected row is locked with FOR UPDATE.
func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.get(ctx, query, username)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	if r.txGetter != nil && r.txGetter(ctx) != nil {
		query += ` FOR UPDATE`
	}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts user and fills its id and timestamps.
// A taken username yields models.ErrAlreadyExists.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	query := `
		INSERT INTO users (first_name, last_name, username, email, password_hash, account_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{user.FirstName, user.LastName, user.Username, user.Email, user.PasswordHash, user.AccountType}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&user.UserID, &user.CreatedAt, &user.UpdatedAt)

	logQuery(query, redactArg(args, 4), user.UserID, err)

	return mapPgError(err)
}

// Update overwrites the mutable fields of user.
// A missing row yields models.ErrNotExists, a taken username models.ErrAlreadyExists.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, username = $4, email = $5,
		    password_hash = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{user.UserID, user.FirstName, user.LastName, user.Username, user.Email, user.PasswordHash}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&user.UpdatedAt)

	logQuery(query, redactArg(args, 5), user.UpdatedAt, err)

	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotExists
	}
	return mapPgError(err)
}

// Delete removes the user and reports whether a row was deleted.
// Follow edges referencing the user are removed by the schema.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, mapPgError(err)
	}
	return rowsAffected > 0, nil
}

// redactArg returns a copy of args with the element at i hidden.
func redactArg(args []any, i int) []any {
	out := make([]any, len(args))
	copy(out, args)
	out[i] = redacted
	return out
}
