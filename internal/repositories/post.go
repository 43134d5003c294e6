package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
)

// PostWriteRepository handles post write operations
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPostWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts post and fills its id and creation date.
func (r *PostWriteRepository) Create(ctx context.Context, post *models.PostDB) error {
	const query = `
		INSERT INTO posts (title, content, date_created, created_by)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id, date_created
	`
	args := []any{post.Title, post.Content, post.CreatedBy}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&post.PostID, &post.DateCreated)

	logQuery(query, args, post.PostID, err)

	return mapPgError(err)
}

// DeleteByCreator removes every post created by userID and returns how many were removed.
func (r *PostWriteRepository) DeleteByCreator(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM posts WHERE created_by = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{userID}, rowsAffected, err)

	return rowsAffected, err
}

// PostReadRepository handles post read operations
type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// ListAll returns every post ordered by creation date.
func (r *PostReadRepository) ListAll(ctx context.Context) ([]models.PostDB, error) {
	const query = `
		SELECT id, title, content, date_created, created_by
		FROM posts
		ORDER BY date_created
	`

	posts := []models.PostDB{}
	err := r.db.SelectContext(ctx, &posts, query)

	logQuery(query, nil, len(posts), err)

	if err != nil {
		return nil, err
	}
	return posts, nil
}
