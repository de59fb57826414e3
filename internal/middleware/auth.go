// Package middleware provides the Echo middleware chain: request logging,
// panic recovery, CORS and JWT authentication.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shelfshare/shelfshare/internal/domain/user"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// Context keys for authentication data.
type contextKey string

const (
	// ContextKeyUserID is the context key for user ID.
	ContextKeyUserID contextKey = "user_id"

	// ContextKeyEmail is the context key for user email.
	ContextKeyEmail contextKey = "email"

	// ContextKeyRole is the context key for the user role.
	ContextKeyRole contextKey = "role"
)

// Auth errors.
var (
	ErrMissingAuthHeader       = errors.New("missing authorization header")
	ErrInvalidAuthHeader       = errors.New("invalid authorization header format")
	ErrInvalidToken            = errors.New("invalid token")
	ErrUserNotFound            = errors.New("user not found")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

// TokenVerifier verifies a bearer token and returns the subject user ID.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// UserLoader loads the user behind a verified token. A token whose subject
// no longer exists must not authenticate.
type UserLoader interface {
	LoadUser(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	// Logger is the structured logger for auth events.
	Logger *slog.Logger

	// TokenVerifier verifies bearer tokens.
	TokenVerifier TokenVerifier

	// UserLoader resolves the token subject to a stored user.
	UserLoader UserLoader
}

// Auth returns an authentication middleware with the given configuration.
func Auth(config AuthConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, tokenErr := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if tokenErr != nil {
				return respondAuthError(c, tokenErr)
			}

			userID, verifyErr := config.TokenVerifier.Verify(token)
			if verifyErr != nil {
				config.Logger.Warn("token verification failed",
					slog.String("error", verifyErr.Error()),
					slog.String("path", c.Request().URL.Path),
					slog.String("remote_ip", c.RealIP()),
				)
				return respondAuthError(c, ErrInvalidToken)
			}

			u, loadErr := config.UserLoader.LoadUser(c.Request().Context(), userID)
			if loadErr != nil {
				config.Logger.Warn("token subject not found",
					slog.String("user_id", userID.String()),
					slog.String("error", loadErr.Error()),
				)
				return respondAuthError(c, ErrUserNotFound)
			}

			enrichContext(c, u)

			return next(c)
		}
	}
}

// extractBearerToken extracts the token from a Bearer authorization header.
func extractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimPrefix(authHeader, bearerPrefix)
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// enrichContext adds the authenticated user to the echo context. Only
// sanitized fields are stored, never the password hash.
func enrichContext(c echo.Context, u *user.User) {
	c.Set(string(ContextKeyUserID), u.ID())
	c.Set(string(ContextKeyEmail), u.Email())
	c.Set(string(ContextKeyRole), u.Role())
}

// respondAuthError sends an authentication error response.
func respondAuthError(c echo.Context, err error) error {
	message := "authentication required"
	status := http.StatusUnauthorized

	switch {
	case errors.Is(err, ErrMissingAuthHeader):
		message = "missing authorization header"
	case errors.Is(err, ErrInvalidAuthHeader):
		message = "invalid authorization header format"
	case errors.Is(err, ErrInvalidToken):
		message = "invalid or expired token"
	case errors.Is(err, ErrUserNotFound):
		message = "user not found"
	case errors.Is(err, ErrInsufficientPermissions):
		message = "insufficient permissions"
		status = http.StatusForbidden
	}

	return c.JSON(status, map[string]string{"message": message})
}

// GetUserID extracts the user ID from the echo context.
func GetUserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(string(ContextKeyUserID)).(uuid.UUID); ok {
		return id
	}
	return uuid.UUID("")
}

// GetEmail extracts the email from the echo context.
func GetEmail(c echo.Context) string {
	if email, ok := c.Get(string(ContextKeyEmail)).(string); ok {
		return email
	}
	return ""
}

// GetRole extracts the user role from the echo context.
func GetRole(c echo.Context) user.Role {
	if role, ok := c.Get(string(ContextKeyRole)).(user.Role); ok {
		return role
	}
	return user.Role("")
}

// IsAdmin checks if the current user has the admin role.
func IsAdmin(c echo.Context) bool {
	return GetRole(c) == user.RoleAdmin
}

// RequireAdmin returns a middleware that rejects non-admin users.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAdmin(c) {
				return respondAuthError(c, ErrInsufficientPermissions)
			}
			return next(c)
		}
	}
}
