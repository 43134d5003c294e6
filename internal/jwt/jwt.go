package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrRoleMismatch    = errors.New("token role does not match")
	ErrMissingHeader   = errors.New("authorization header missing")
	ErrMalformedHeader = errors.New("invalid authorization header format")
)

// Claims is the claim set carried by every issued token.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims

	UserID uuid.UUID `json:"-"` // Parsed from the subject claim
}

// JWT provides methods to generate and validate JWT tokens for one role.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Role      string        // Role claim written and required on parse
	Exp       time.Duration // Default token expiration
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.SecretKey = secret
	}
}

// WithRole sets the role claim.
func WithRole(role string) Opt {
	return func(j *JWT) {
		j.Role = role
	}
}

// WithExpiration sets the default expiration used by Generate.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.Exp = exp
	}
}

// New creates a new JWT instance
func New(opts ...Opt) *JWT {
	j := &JWT{Exp: 24 * time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a token for userID that expires after the default expiration.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	return j.GenerateWithTTL(ctx, userID, j.Exp)
}

// GenerateWithTTL creates a token for userID that expires after ttl.
func (j *JWT) GenerateWithTTL(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: j.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses and verifies tokenString and returns its claims.
// The signature, expiry, and role claim are all checked.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Role != j.Role {
		return nil, ErrRoleMismatch
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.New("invalid subject format")
	}
	claims.UserID = userID

	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrMalformedHeader
	}

	return parts[1], nil
}
