// Package httphandler exposes the REST API over the application layer use
// cases.
package httphandler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	userapp "github.com/shelfshare/shelfshare/internal/application/user"
	"github.com/shelfshare/shelfshare/internal/domain/user"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
	"github.com/shelfshare/shelfshare/internal/infrastructure/httpserver"
	"github.com/shelfshare/shelfshare/internal/middleware"
)

// SignupRequest represents the signup request body.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the reply to a successful signup or login.
type TokenResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserResponse represents a user in API responses. The password hash never
// leaves the server.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// UserRegistrar registers new users.
// Declared on the consumer side per project guidelines.
type UserRegistrar interface {
	Execute(ctx context.Context, cmd userapp.RegisterUserCommand) (userapp.Result, error)
}

// UserAuthenticator verifies credentials.
type UserAuthenticator interface {
	Execute(ctx context.Context, cmd userapp.LoginCommand) (userapp.Result, error)
}

// UserLister lists all registered users.
type UserLister interface {
	Execute(ctx context.Context) (userapp.UsersListResult, error)
}

// TokenIssuer issues a signed token for a user.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// AuthHandler handles signup, login and the admin user listing.
type AuthHandler struct {
	registrar     UserRegistrar
	authenticator UserAuthenticator
	lister        UserLister
	tokens        TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	registrar UserRegistrar,
	authenticator UserAuthenticator,
	lister UserLister,
	tokens TokenIssuer,
) *AuthHandler {
	return &AuthHandler{
		registrar:     registrar,
		authenticator: authenticator,
		lister:        lister,
		tokens:        tokens,
	}
}

// RegisterRoutes registers auth routes with the router.
func (h *AuthHandler) RegisterRoutes(r *httpserver.Router) {
	r.Public().POST("/auth/signup", h.Signup)
	r.Public().POST("/auth/login", h.Login)
	r.Auth().GET("/auth/all-users", h.AllUsers, middleware.RequireAdmin())
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "invalid request body")
	}

	cmd := userapp.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}

	result, err := h.registrar.Execute(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, userapp.ErrEmailAlreadyExists) {
			return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "user already exists")
		}
		return httpserver.RespondError(c, err)
	}

	return h.respondWithToken(c, result.User)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "invalid request body")
	}

	cmd := userapp.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.authenticator.Execute(c.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, userapp.ErrUserNotFound):
			return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "user not found")
		case errors.Is(err, userapp.ErrInvalidCredentials):
			return httpserver.RespondErrorMessage(c, http.StatusBadRequest, "invalid credentials")
		}
		return httpserver.RespondError(c, err)
	}

	return h.respondWithToken(c, result.User)
}

// AllUsers handles GET /api/auth/all-users. Admin only.
func (h *AuthHandler) AllUsers(c echo.Context) error {
	result, err := h.lister.Execute(c.Request().Context())
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	users := make([]UserResponse, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, ToUserResponse(u))
	}

	return httpserver.RespondOK(c, users)
}

func (h *AuthHandler) respondWithToken(c echo.Context, u *user.User) error {
	token, err := h.tokens.Issue(u.ID())
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, TokenResponse{
		Token: token,
		Email: u.Email(),
		Role:  string(u.Role()),
	})
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt().UTC().Format(time.RFC3339),
	}
}
