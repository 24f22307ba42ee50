package utils

import (
	"crypto/rand"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
)

var (
	secretOnce sync.Once
	signingKey []byte
)

// jwtSecret reads JWT_SECRET once. When it is unset a random per-process
// key is generated instead of a guessable constant: tokens keep working
// within the process but do not survive a restart.
func jwtSecret() []byte {
	secretOnce.Do(func() {
		if secret := os.Getenv("JWT_SECRET"); secret != "" {
			signingKey = []byte(secret)
			return
		}
		logrus.Warn("JWT_SECRET is not set; using a random per-process signing key, tokens will not survive a restart")
		signingKey = make([]byte, 32)
		if _, err := rand.Read(signingKey); err != nil {
			logrus.Fatal("Failed to generate fallback JWT signing key: ", err)
		}
	})
	return signingKey
}

// Claims define the JWT token payload.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens groups an access token with its refresh token.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// GenerateTokens generates an access token and a refresh token for a user.
func GenerateTokens(username, role string) (*Tokens, error) {
	accessToken, err := generateJWT(username, role, 15*time.Minute)
	if err != nil {
		return nil, err
	}

	refreshToken, err := generateJWT(username, role, 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	return &Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateToken validates a JWT and returns its claims.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func generateJWT(username, role string, duration time.Duration) (string, error) {
	claims := &Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}
