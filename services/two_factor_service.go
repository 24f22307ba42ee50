package services

import (
	"errors"

	"pointarthub/models"
	"pointarthub/repositories"
	"pointarthub/utils"
)

var (
	ErrInvalid2FACode = errors.New("invalid two-factor code")
	ErrInvalidInput   = errors.New("invalid input")
)

type TwoFactorService struct {
	twoFactorRepo *repositories.TwoFactorRepository
	userRepo      repositories.UserRepository
}

func NewTwoFactorService(twoFactorRepo *repositories.TwoFactorRepository, userRepo repositories.UserRepository) *TwoFactorService {
	return &TwoFactorService{twoFactorRepo: twoFactorRepo, userRepo: userRepo}
}

// Setup2FA generates a new TOTP secret for the account and stages it until
// the user confirms a code.
func (s *TwoFactorService) Setup2FA(email string) (string, string, error) {
	if email == "" {
		return "", "", ErrInvalidInput
	}

	secret, qrCodeURL, err := utils.Generate2FASecret(email)
	if err != nil {
		return "", "", err
	}

	tempSecret := &models.TempTwoFASecret{
		UserEmail: email,
		Secret:    secret,
	}
	if err := s.twoFactorRepo.SaveTempSecret(tempSecret); err != nil {
		return "", "", err
	}

	return secret, qrCodeURL, nil
}

// Enable2FA verifies the first code against the staged secret and turns
// two-factor on for the account.
func (s *TwoFactorService) Enable2FA(email, code string) error {
	if email == "" || code == "" {
		return ErrInvalidInput
	}

	tempSecret, err := s.twoFactorRepo.FindTempSecretByEmail(email)
	if err != nil {
		return err
	}

	if !utils.VerifyTwoFactorCode(tempSecret.Secret, code) {
		return ErrInvalid2FACode
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	user.TwoFactorEnabled = true
	user.TwoFactorSecret = tempSecret.Secret
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	return s.twoFactorRepo.DeleteTempSecret(tempSecret)
}
