package utils

import (
	"github.com/pquerna/otp/totp"
)

// Generate2FASecret creates a new TOTP secret for the given account and
// returns the secret together with the provisioning URL for authenticator
// apps.
func Generate2FASecret(email string) (secret string, url string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Point Art Hub",
		AccountName: email,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// VerifyTwoFactorCode checks a TOTP code against the stored secret.
func VerifyTwoFactorCode(secret, code string) bool {
	return totp.Validate(code, secret)
}
