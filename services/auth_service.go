package services

import (
	"errors"

	"github.com/sirupsen/logrus"

	"pointarthub/models"
	"pointarthub/repositories"
	"pointarthub/utils"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTwoFactorRequired  = errors.New("two-factor code required")
)

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) Register(user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleStaff
	}

	if err := s.userRepo.Create(user); err != nil {
		logrus.Error("Error registering user: ", err)
		return errors.New("error registering user")
	}
	return nil
}

// Login verifies credentials and, when the account has two-factor enabled,
// the TOTP code, then returns a token pair.
func (s *AuthService) Login(username, password, totpCode string) (*utils.Tokens, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		logrus.Error("User not found: ", err)
		return nil, ErrInvalidCredentials
	}

	if err := utils.ComparePassword(user.Password, password); err != nil {
		logrus.Error("Invalid password for user: ", username)
		return nil, ErrInvalidCredentials
	}

	if user.TwoFactorEnabled {
		if totpCode == "" {
			return nil, ErrTwoFactorRequired
		}
		if !utils.VerifyTwoFactorCode(user.TwoFactorSecret, totpCode) {
			return nil, ErrInvalidCredentials
		}
	}

	tokens, err := utils.GenerateTokens(user.Username, string(user.Role))
	if err != nil {
		logrus.Error("Error generating tokens: ", err)
		return nil, errors.New("error generating token")
	}

	return tokens, nil
}

func (s *AuthService) Profile(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
