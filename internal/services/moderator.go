package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/logger"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=moderator.go -destination=moderator_mock_test.go -package=services

// ModeratorReader defines read-only operations for moderators.
type ModeratorReader interface {
	GetByUsername(ctx context.Context, username string) (*models.ModeratorDB, error)
}

// ModeratorWriter defines write operations for moderators.
type ModeratorWriter interface {
	Create(ctx context.Context, mod *models.ModeratorDB) error
}

// PostLister lists every stored post.
type PostLister interface {
	ListAll(ctx context.Context) ([]models.PostDB, error)
}

// ModeratorTokenGenerator issues moderator tokens with the issuer's default lifetime.
type ModeratorTokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// ModeratorService handles moderator accounts and content review.
type ModeratorService struct {
	reader ModeratorReader
	writer ModeratorWriter
	posts  PostLister
	tokens ModeratorTokenGenerator
	events eventPublisher
}

// NewModeratorService creates a new ModeratorService instance.
// A nil events writer disables event publishing.
func NewModeratorService(
	reader ModeratorReader,
	writer ModeratorWriter,
	posts PostLister,
	tokens ModeratorTokenGenerator,
	events KafkaWriter,
) *ModeratorService {
	return &ModeratorService{
		reader: reader,
		writer: writer,
		posts:  posts,
		tokens: tokens,
		events: eventPublisher{writer: events},
	}
}

// Signup creates a moderator and returns it together with a token.
func (svc *ModeratorService) Signup(ctx context.Context, in SignupInput) (*models.ModeratorDB, string, error) {
	if err := validateInput(in); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	mod := &models.ModeratorDB{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := svc.writer.Create(ctx, mod); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return nil, "", ErrDuplicateAccount
		}
		logger.Log.Errorw("failed to save moderator", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, mod.ModeratorID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	svc.events.publish(ctx, models.EventModeratorSignedUp, mod.ModeratorID, uuid.Nil)

	return mod, token, nil
}

// Login authenticates a moderator and returns it together with a token.
func (svc *ModeratorService) Login(ctx context.Context, in LoginInput) (*models.ModeratorDB, string, error) {
	if err := validateInput(in); err != nil {
		return nil, "", err
	}

	mod, err := svc.reader.GetByUsername(ctx, in.Username)
	if err != nil {
		logger.Log.Errorw("failed to get moderator", "err", err)
		return nil, "", err
	}
	if mod == nil {
		return nil, "", ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(mod.PasswordHash), []byte(in.Password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", in.Username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, mod.ModeratorID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return mod, token, nil
}

// ListPosts returns every post ordered by creation date.
func (svc *ModeratorService) ListPosts(ctx context.Context) ([]models.PostDB, error) {
	posts, err := svc.posts.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "err", err)
		return nil, err
	}
	return posts, nil
}
