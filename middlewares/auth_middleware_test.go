package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"pointarthub/models"
	"pointarthub/utils"
)

type stubValidator struct {
	claims *utils.Claims
	err    error
}

func (s stubValidator) ValidateToken(token string) (*utils.Claims, error) {
	return s.claims, s.err
}

type stubUserRepo struct {
	user *models.User
}

func (s stubUserRepo) Create(user *models.User) error { return nil }

func (s stubUserRepo) FindByUsername(username string) (*models.User, error) {
	if s.user == nil || s.user.Username != username {
		return nil, errors.New("record not found")
	}
	return s.user, nil
}

func (s stubUserRepo) FindByEmail(email string) (*models.User, error) {
	return nil, errors.New("record not found")
}

func (s stubUserRepo) List() ([]models.User, error) { return nil, nil }

func (s stubUserRepo) Update(user *models.User) error { return nil }

func (s stubUserRepo) UpdateRole(username string, role models.Role) error { return nil }

func invoke(mw echo.MiddlewareFunc, authorization string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestRequireAuthMissingToken(t *testing.T) {
	am := NewAuthMiddleware(stubValidator{}, stubUserRepo{})

	_, err := invoke(am.RequireAuth(), "")
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	am := NewAuthMiddleware(stubValidator{err: errors.New("expired")}, stubUserRepo{})

	_, err := invoke(am.RequireAuth(), "Bearer bad-token")
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAuthSetsUser(t *testing.T) {
	user := &models.User{Username: "amina", Role: models.RoleStaff}
	am := NewAuthMiddleware(
		stubValidator{claims: &utils.Claims{Username: "amina", Role: string(models.RoleStaff)}},
		stubUserRepo{user: user},
	)

	c, err := invoke(am.RequireAuth(), "Bearer good-token")
	assert.NoError(t, err)
	assert.Equal(t, user, c.Get("user"))
}

func TestRequireAdminRejectsStaff(t *testing.T) {
	user := &models.User{Username: "amina", Role: models.RoleStaff}
	am := NewAuthMiddleware(
		stubValidator{claims: &utils.Claims{Username: "amina", Role: string(models.RoleStaff)}},
		stubUserRepo{user: user},
	)

	_, err := invoke(am.RequireAdmin(), "Bearer good-token")
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	user := &models.User{Username: "root", Role: models.RoleAdmin}
	am := NewAuthMiddleware(
		stubValidator{claims: &utils.Claims{Username: "root", Role: string(models.RoleAdmin)}},
		stubUserRepo{user: user},
	)

	_, err := invoke(am.RequireAdmin(), "Bearer good-token")
	assert.NoError(t, err)
}
