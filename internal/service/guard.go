package service

import "fmt"

// Authorize reports whether claims carry requiredRole. An empty requirement
// always passes. The decision uses the token snapshot only.
func Authorize(claims *Claims, requiredRole string) error {
	if requiredRole == "" {
		return nil
	}
	if claims == nil {
		return ErrForbidden
	}
	for _, role := range claims.Roles {
		if role == requiredRole {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s required", ErrForbidden, requiredRole)
}
