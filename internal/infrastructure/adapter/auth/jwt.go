package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mensunw/people-bets/internal/domain/entity"
	errs "github.com/mensunw/people-bets/internal/domain/error"
	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
)

// DefaultIssuer is stamped on tokens when no issuer is configured
const DefaultIssuer = "people-bets"

// Claims carries the caller identity: sub is the user id
type Claims struct {
	Email string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens
type TokenService struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewTokenService creates a token service. An empty issuer disables the
// issuer check on verification and signs with DefaultIssuer.
func NewTokenService(secret, issuer string, ttl time.Duration, tp coreport.TimeProvider) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("auth secret must not be empty")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: tp,
	}, nil
}

// Sign issues a token for identity and returns it with its expiry
func (s *TokenService) Sign(identity entity.Identity) (string, time.Time, error) {
	if _, err := uuid.Parse(identity.UserID); err != nil {
		return "", time.Time{}, errs.NewValidationError("sub", "must be a UUID")
	}

	now := s.timeProvider.Now().UTC()
	expiresAt := now.Add(s.ttl)
	issuer := s.issuer
	if issuer == "" {
		issuer = DefaultIssuer
	}

	claims := Claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify parses token and returns the identity it asserts. Every failure is
// reported as ErrUnauthenticated.
func (s *TokenService) Verify(token string) (entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeProvider.Now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return entity.Identity{}, fmt.Errorf("%w: %v", errs.ErrUnauthenticated, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return entity.Identity{}, fmt.Errorf("%w: invalid token", errs.ErrUnauthenticated)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return entity.Identity{}, fmt.Errorf("%w: subject is not a user id", errs.ErrUnauthenticated)
	}

	return entity.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
