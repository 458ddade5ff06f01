package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum HMAC secret size in bytes.
const MinSecretLength = 32

// Claims represents JWT token claims. They are a snapshot taken at sign time.
type Claims struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTService defines JWT token operations.
type JWTService interface {
	Sign(claims Claims) (string, error)
	Verify(tokenString string) (*Claims, error)
	Remaining(claims *Claims) time.Duration
	GetExpiry() time.Duration
}

type jwtService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// JWTOption configures a JWTService.
type JWTOption func(*jwtService)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService creates a new JWTService instance.
func NewJWTService(secret string, expiry time.Duration, opts ...JWTOption) (JWTService, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLength)
	}
	if expiry <= 0 {
		return nil, errors.New("jwt expiry must be positive")
	}

	s := &jwtService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *jwtService) GetExpiry() time.Duration {
	return s.expiry
}

// Sign issues an HS256 token for the identity in claims. Registered claims
// are overwritten with fresh issue and expiry times.
func (s *jwtService) Sign(claims Claims) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(s.expiry))),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	if claims.Roles == nil {
		claims.Roles = []string{}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ceilSecond rounds t up to a whole second. NumericDate keeps whole seconds
// only, so truncating exp would cut the token lifetime short.
func ceilSecond(t time.Time) time.Time {
	if whole := t.Truncate(time.Second); !whole.Equal(t) {
		return whole.Add(time.Second)
	}
	return t
}

func (s *jwtService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == 0 {
		return nil, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}
	return claims, nil
}

// Remaining returns the time left before claims expire, never negative.
func (s *jwtService) Remaining(claims *Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	if d := claims.ExpiresAt.Sub(s.now()); d > 0 {
		return d
	}
	return 0
}
