package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/repository"
)

// LoginRequest is the credential payload for login and registration.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthService handles credential checks and token issuance.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
	IssueToken(ctx context.Context, user *models.User) (string, error)
	ValidateToken(token string) (int64, *Claims, error)
}

type authService struct {
	userRepo    repository.UserRepository
	jwtService  JWTService
	hasher      PasswordHasher
	defaultRole string
}

// NewAuthService creates a new AuthService. defaultRole is assigned to
// every self-registered account.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, hasher PasswordHasher, defaultRole string) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		hasher:      hasher,
		defaultRole: defaultRole,
	}
}

// Login returns a token for valid credentials. Unknown email and wrong
// password produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUnauthenticated
		}
		return "", mapStoreError(err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", ErrUnauthenticated
	}

	return s.IssueToken(ctx, user)
}

func (s *authService) Register(ctx context.Context, email, password string) (string, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return "", fmt.Errorf("%w: email %s is registered", ErrConflict, email)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", mapStoreError(err)
	}

	user, err := createAccount(ctx, s.userRepo, s.hasher, email, password, s.defaultRole)
	if err != nil {
		return "", err
	}

	return s.IssueToken(ctx, user)
}

// IssueToken signs the user's identity with the roles currently stored.
func (s *authService) IssueToken(ctx context.Context, user *models.User) (string, error) {
	roles, err := s.userRepo.GetUserRoles(ctx, user.ID)
	if err != nil {
		return "", mapStoreError(err)
	}

	values := make([]string, 0, len(roles))
	for _, role := range roles {
		values = append(values, role.Value)
	}

	token, err := s.jwtService.Sign(Claims{ID: user.ID, Email: user.Email, Roles: values})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return token, nil
}

// ValidateToken verifies token and returns its remaining lifetime in seconds.
func (s *authService) ValidateToken(token string) (int64, *Claims, error) {
	claims, err := s.jwtService.Verify(token)
	if err != nil {
		return 0, nil, err
	}
	return int64(s.jwtService.Remaining(claims).Seconds()), claims, nil
}

// createAccount hashes password and stores the user with roleValue.
// A missing role is a deployment fault, not a client error.
func createAccount(ctx context.Context, repo repository.UserRepository, hasher PasswordHasher, email, password, roleValue string) (*models.User, error) {
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %w", ErrInternal, err)
	}

	user := &models.User{Email: email, PasswordHash: hash}
	if err := repo.CreateWithRole(ctx, user, roleValue); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: role %s is not seeded: %w", ErrInternal, roleValue, err)
		}
		return nil, mapStoreError(err)
	}
	return user, nil
}
