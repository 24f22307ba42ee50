package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"pointarthub/models"
	"pointarthub/utils"
)

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) FindByUsername(username string) (*models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List() ([]models.User, error) {
	var users []models.User
	for _, user := range m.users {
		users = append(users, *user)
	}
	return users, nil
}

func (m *mockUserRepo) Update(user *models.User) error {
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) UpdateRole(username string, role models.Role) error {
	user, ok := m.users[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Role = role
	return nil
}

func seedUser(t *testing.T, repo *mockUserRepo, username, password string) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	assert.NoError(t, err)
	user := &models.User{Username: username, Password: hashed, Role: models.RoleStaff}
	repo.users[username] = user
	return user
}

func TestRegisterDefaultsToStaffRole(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewAuthService(repo)

	assert.NoError(t, svc.Register(&models.User{Username: "amina", Password: "secret"}))
	assert.Equal(t, models.RoleStaff, repo.users["amina"].Role)
}

func TestLoginSuccess(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "amina", "correct-horse")
	svc := NewAuthService(repo)

	tokens, err := svc.Login("amina", "correct-horse", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := utils.ValidateToken(tokens.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "amina", claims.Username)
	assert.Equal(t, string(models.RoleStaff), claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "amina", "correct-horse")
	svc := NewAuthService(repo)

	_, err := svc.Login("amina", "wrong", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())

	_, err := svc.Login("ghost", "whatever", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRequiresTwoFactorCodeWhenEnabled(t *testing.T) {
	repo := newMockUserRepo()
	user := seedUser(t, repo, "amina", "correct-horse")
	user.TwoFactorEnabled = true
	user.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	svc := NewAuthService(repo)

	_, err := svc.Login("amina", "correct-horse", "")
	assert.ErrorIs(t, err, ErrTwoFactorRequired)

	_, err = svc.Login("amina", "correct-horse", "000000")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
