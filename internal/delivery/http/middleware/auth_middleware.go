package middleware

import (
	"net/http"
	"strings"

	"sukhan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID  = "userID"
	contextKeyIsAdmin = "isAdmin"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyIsAdmin, claims.IsAdmin)

		return next(c)
	}
}

// OptionalAuthenticate attaches the caller's identity when a valid token
// is present but lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := m.claimsFromRequest(c); err == nil {
			c.Set(contextKeyUserID, claims.UserID)
			c.Set(contextKeyIsAdmin, claims.IsAdmin)
		}

		return next(c)
	}
}

// RequireAdmin refuses callers without the admin flag.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: admin access required"})
		}

		return next(c)
	}
}

func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	return claims, nil
}

// GetUserID extracts the authenticated user's ID from the request context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// IsAdmin reports whether the authenticated caller carries the admin flag.
func IsAdmin(c echo.Context) bool {
	isAdmin, ok := c.Get(contextKeyIsAdmin).(bool)

	return ok && isAdmin
}
