package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pointarthub/models"
	"pointarthub/repositories"
	"pointarthub/utils"
)

type AuthConfig struct {
	RequireToken bool
	RequireRole  models.Role
}

type TokenValidator interface {
	ValidateToken(token string) (*utils.Claims, error)
}

// JWTValidator validates tokens with the shared signing secret.
type JWTValidator struct{}

func (JWTValidator) ValidateToken(token string) (*utils.Claims, error) {
	return utils.ValidateToken(token)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	userRepo       repositories.UserRepository
}

func NewAuthMiddleware(validator TokenValidator, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: validator,
		userRepo:       userRepo,
	}
}

func (am *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return am.WithConfig(AuthConfig{
		RequireToken: true,
	})
}

func (am *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return am.WithConfig(AuthConfig{
		RequireToken: true,
		RequireRole:  models.RoleAdmin,
	})
}

func (am *AuthMiddleware) WithConfig(config AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.RequireToken {
				token := extractToken(c)
				if token == "" {
					return echo.NewHTTPError(http.StatusUnauthorized, "Authorization token not found")
				}

				claims, err := am.tokenValidator.ValidateToken(token)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err))
				}

				user, err := am.userRepo.FindByUsername(claims.Username)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
				}

				c.Set("user", user)

				if config.RequireRole != "" && user.Role != config.RequireRole {
					return echo.NewHTTPError(http.StatusForbidden, "Permission denied: "+string(config.RequireRole)+" role required")
				}
			}

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	token := c.Request().Header.Get("Authorization")
	return strings.TrimPrefix(token, "Bearer ")
}
