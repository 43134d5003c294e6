package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/logger"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=user_mock_test.go -package=services

const bcryptCost = 10

// Default lifetimes of user tokens.
const (
	DefaultSignupTokenTTL = 24 * time.Hour
	DefaultLoginTokenTTL  = 7 * 24 * time.Hour
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// FollowReader lists both sides of a user's follow graph.
type FollowReader interface {
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// FollowWriter adds and removes follow edges.
type FollowWriter interface {
	Create(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
}

// PostDeleter removes the posts owned by a user.
type PostDeleter interface {
	DeleteByCreator(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenGenerator issues tokens with an explicit lifetime.
type TokenGenerator interface {
	GenerateWithTTL(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error)
}

// SessionStore records session state for issued tokens.
type SessionStore interface {
	Save(ctx context.Context, userID uuid.UUID, accountType string, ttl time.Duration) error
	GetAccountType(ctx context.Context, userID uuid.UUID) (string, error)
	Revoke(ctx context.Context, userID uuid.UUID, ttl time.Duration) error
}

// UserService handles user accounts and the follow graph.
type UserService struct {
	reader       UserReader
	writer       UserWriter
	followReader FollowReader
	followWriter FollowWriter
	posts        PostDeleter
	tx           Transactor
	tokens       TokenGenerator
	sessions     SessionStore
	events       eventPublisher
	signupTTL    time.Duration
	loginTTL     time.Duration
}

// UserServiceOpt configures optional UserService dependencies.
type UserServiceOpt func(*UserService)

// WithSessions enables session bookkeeping and token revocation.
func WithSessions(sessions SessionStore) UserServiceOpt {
	return func(s *UserService) {
		s.sessions = sessions
	}
}

// WithEventWriter enables publishing of account events.
func WithEventWriter(w KafkaWriter) UserServiceOpt {
	return func(s *UserService) {
		s.events = eventPublisher{writer: w}
	}
}

// WithTokenTTL overrides the lifetimes of tokens issued on signup and login.
func WithTokenTTL(signup, login time.Duration) UserServiceOpt {
	return func(s *UserService) {
		s.signupTTL = signup
		s.loginTTL = login
	}
}

// NewUserService creates a new UserService instance.
func NewUserService(
	reader UserReader,
	writer UserWriter,
	followReader FollowReader,
	followWriter FollowWriter,
	posts PostDeleter,
	tx Transactor,
	tokens TokenGenerator,
	opts ...UserServiceOpt,
) *UserService {
	s := &UserService{
		reader:       reader,
		writer:       writer,
		followReader: followReader,
		followWriter: followWriter,
		posts:        posts,
		tx:           tx,
		tokens:       tokens,
		signupTTL:    DefaultSignupTokenTTL,
		loginTTL:     DefaultLoginTokenTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup creates a user and returns it together with a token.
func (svc *UserService) Signup(ctx context.Context, in SignupInput) (*models.UserDB, string, error) {
	if err := validateInput(in); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user := &models.UserDB{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		AccountType:  models.AccountTypeUnpaid,
		Followers:    []uuid.UUID{},
		Following:    []uuid.UUID{},
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return nil, "", ErrDuplicateAccount
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.GenerateWithTTL(ctx, user.UserID, svc.signupTTL)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	svc.saveSession(ctx, user, svc.signupTTL)
	svc.events.publish(ctx, models.EventUserSignedUp, user.UserID, uuid.Nil)

	return user, token, nil
}

// Login authenticates a user and returns it together with a token.
func (svc *UserService) Login(ctx context.Context, in LoginInput) (*models.UserDB, string, error) {
	if err := validateInput(in); err != nil {
		return nil, "", err
	}

	user, err := svc.reader.GetByUsername(ctx, in.Username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", in.Username)
		return nil, "", ErrInvalidCredentials
	}

	if err := svc.loadGraph(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := svc.tokens.GenerateWithTTL(ctx, user.UserID, svc.loginTTL)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	svc.saveSession(ctx, user, svc.loginTTL)

	return user, token, nil
}

// Get returns the user with id along with its followers and following.
func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if err := svc.loadGraph(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SessionType returns the account type recorded with the user's current session,
// or "" when no session is live or sessions are disabled.
func (svc *UserService) SessionType(ctx context.Context, id uuid.UUID) (string, error) {
	if svc.sessions == nil {
		return "", nil
	}
	accountType, err := svc.sessions.GetAccountType(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read session", "user_id", id, "err", err)
		return "", err
	}
	return accountType, nil
}

// Update changes the non-empty fields of in on the caller's own profile.
func (svc *UserService) Update(ctx context.Context, callerID, targetID uuid.UUID, in UpdateInput) (*models.UserDB, error) {
	if callerID != targetID {
		return nil, ErrUnauthorized
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	user, err := svc.reader.GetByID(ctx, callerID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", callerID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyExists):
			return nil, ErrDuplicateAccount
		case errors.Is(err, models.ErrNotExists):
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to update user", "user_id", callerID, "err", err)
		return nil, err
	}

	if err := svc.loadGraph(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the caller's account together with its posts and follow edges,
// then revokes its outstanding tokens.
func (svc *UserService) Delete(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID != targetID {
		return ErrUnauthorized
	}

	err := svc.tx.WithTx(ctx, func(ctx context.Context) error {
		user, err := svc.reader.GetByID(ctx, callerID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrNotFound
		}

		n, err := svc.posts.DeleteByCreator(ctx, callerID)
		if err != nil {
			return err
		}
		logger.Log.Infow("posts deleted", "user_id", callerID, "count", n)

		deleted, err := svc.writer.Delete(ctx, callerID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Log.Errorw("failed to delete user", "user_id", callerID, "err", err)
		}
		return err
	}

	if svc.sessions != nil {
		if err := svc.sessions.Revoke(ctx, callerID, max(svc.signupTTL, svc.loginTTL)); err != nil {
			logger.Log.Errorw("failed to revoke tokens", "user_id", callerID, "err", err)
		}
	}
	svc.events.publish(ctx, models.EventUserDeleted, callerID, uuid.Nil)

	return nil
}

// Follow makes the caller follow targetID.
func (svc *UserService) Follow(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID == targetID {
		return &ValidationError{Field: "id", Message: "You cannot follow yourself"}
	}
	if err := svc.ensureExists(ctx, targetID); err != nil {
		return err
	}

	inserted, err := svc.followWriter.Create(ctx, callerID, targetID)
	if err != nil {
		if errors.Is(err, models.ErrNotExists) {
			return ErrNotFound
		}
		logger.Log.Errorw("failed to follow user", "follower_id", callerID, "followee_id", targetID, "err", err)
		return err
	}
	if !inserted {
		return ErrAlreadyFollowing
	}

	svc.events.publish(ctx, models.EventUserFollowed, callerID, targetID)
	return nil
}

// Unfollow makes the caller stop following targetID.
func (svc *UserService) Unfollow(ctx context.Context, callerID, targetID uuid.UUID) error {
	if err := svc.ensureExists(ctx, targetID); err != nil {
		return err
	}

	deleted, err := svc.followWriter.Delete(ctx, callerID, targetID)
	if err != nil {
		logger.Log.Errorw("failed to unfollow user", "follower_id", callerID, "followee_id", targetID, "err", err)
		return err
	}
	if !deleted {
		return ErrNotFollowing
	}

	svc.events.publish(ctx, models.EventUserUnfollowed, callerID, targetID)
	return nil
}

func (svc *UserService) ensureExists(ctx context.Context, id uuid.UUID) error {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return nil
}

func (svc *UserService) loadGraph(ctx context.Context, user *models.UserDB) error {
	followers, err := svc.followReader.ListFollowers(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list followers", "user_id", user.UserID, "err", err)
		return err
	}
	following, err := svc.followReader.ListFollowing(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list following", "user_id", user.UserID, "err", err)
		return err
	}
	user.Followers = followers
	user.Following = following
	return nil
}

func (svc *UserService) saveSession(ctx context.Context, user *models.UserDB, ttl time.Duration) {
	if svc.sessions == nil {
		return
	}
	if err := svc.sessions.Save(ctx, user.UserID, user.AccountType, ttl); err != nil {
		logger.Log.Errorw("failed to save session", "user_id", user.UserID, "err", err)
	}
}
