package service

import (
	"errors"
	"fmt"

	"github.com/progresstrack/progress-api/internal/repository"
)

var (
	// ErrUnauthenticated is returned for an unknown email or a wrong password.
	ErrUnauthenticated = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for absent rows and rows owned by another user.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique value is already taken.
	ErrConflict = errors.New("already exists")
	// ErrTimeout is returned when a store call exceeds its deadline.
	ErrTimeout = errors.New("timeout")
	// ErrInvalidInput is returned for requests the service rejects before touching the store.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal wraps every other failure.
	ErrInternal = errors.New("internal error")
)

// mapStoreError converts repository errors into service errors.
// The repository error stays in the chain for logging.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrTimeout):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
