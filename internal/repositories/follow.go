package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// FollowWriteRepository maintains follow edges. One row represents both
// sides of the relationship, so every write is a single statement.
type FollowWriteRepository struct {
	db *sqlx.DB
}

func NewFollowWriteRepository(db *sqlx.DB) *FollowWriteRepository {
	return &FollowWriteRepository{db: db}
}

// Create adds the edge follower -> followee. It returns false when the edge
// already existed, and models.ErrNotExists when either user is gone.
func (r *FollowWriteRepository) Create(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`
	args := []any{followerID, followeeID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, mapPgError(err)
	}
	return rowsAffected > 0, nil
}

// Delete removes the edge follower -> followee and reports whether it existed.
func (r *FollowWriteRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	args := []any{followerID, followeeID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// FollowReadRepository reads follow edges
type FollowReadRepository struct {
	db *sqlx.DB
}

func NewFollowReadRepository(db *sqlx.DB) *FollowReadRepository {
	return &FollowReadRepository{db: db}
}

// ListFollowers returns the ids of users following userID, oldest first.
func (r *FollowReadRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT follower_id FROM follows
		WHERE followee_id = $1
		ORDER BY created_at
	`
	return r.list(ctx, query, userID)
}

// ListFollowing returns the ids of users userID follows, oldest first.
func (r *FollowReadRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT followee_id FROM follows
		WHERE follower_id = $1
		ORDER BY created_at
	`
	return r.list(ctx, query, userID)
}

func (r *FollowReadRepository) list(ctx context.Context, query string, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.SelectContext(ctx, &ids, query, userID)

	logQuery(query, []any{userID}, ids, err)

	if err != nil {
		return nil, err
	}
	return ids, nil
}
