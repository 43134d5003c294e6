package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/logger"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
)

//go:generate mockgen -source=post.go -destination=post_mock_test.go -package=services

// PostWriter stores new posts.
type PostWriter interface {
	Create(ctx context.Context, post *models.PostDB) error
}

// PostService handles post creation.
type PostService struct {
	writer PostWriter
}

// NewPostService creates a new PostService instance.
func NewPostService(writer PostWriter) *PostService {
	return &PostService{writer: writer}
}

// Create stores a post owned by callerID.
func (svc *PostService) Create(ctx context.Context, callerID uuid.UUID, in PostInput) (*models.PostDB, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	post := &models.PostDB{
		Title:     in.Title,
		Content:   in.Content,
		CreatedBy: callerID,
	}
	if err := svc.writer.Create(ctx, post); err != nil {
		if errors.Is(err, models.ErrNotExists) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to save post", "user_id", callerID, "err", err)
		return nil, err
	}
	return post, nil
}
