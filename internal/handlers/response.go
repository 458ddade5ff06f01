// Package handlers contains HTTP request handlers for the progress API.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/progresstrack/progress-api/internal/middleware"
	"github.com/progresstrack/progress-api/internal/service"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError writes message with status.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// StatusFor maps a service error onto an HTTP status and public message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, "already exists"
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, service.ErrTimeout):
		return http.StatusGatewayTimeout, "request timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogAndRespondError logs the full cause and writes the mapped public error.
// Server-side failures log at error level, client errors at debug.
func LogAndRespondError(c *gin.Context, logger *zap.Logger, err error) {
	status, message := StatusFor(err)

	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
		zap.String("request_id", middleware.GetRequestID(c)),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Debug("request rejected", fields...)
	}

	RespondError(c, status, message)
}

// paramID parses a positive integer path parameter. It writes 400 and
// returns false when the parameter is invalid.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// callerID returns the user id of the verified token.
func callerID(c *gin.Context) (int64, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "missing bearer token")
		return 0, false
	}
	return claims.ID, true
}
