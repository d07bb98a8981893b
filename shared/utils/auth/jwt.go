package utils

import (
	"errors"
	"strconv"
	"time"

	"sitebuilder-backend/shared/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PurposePasswordReset tags reset tokens so they cannot be replayed
// against any other endpoint
const PurposePasswordReset = "password-reset"

type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

func accessSecret() []byte {
	return []byte(config.GetConfig().JWTAccessSecret)
}

func refreshSecret() []byte {
	return []byte(config.GetConfig().JWTRefreshSecret)
}

func emailVerificationSecret() []byte {
	return []byte(config.GetConfig().JWTEmailVerificationSecret)
}

func passwordResetSecret() []byte {
	return []byte(config.GetConfig().JWTPasswordResetSecret)
}

// GetAccessExpireDuration gets access token expiration duration from config
func GetAccessExpireDuration() time.Duration {
	cfg := config.GetConfig()

	minutes, err := strconv.Atoi(cfg.JWTAccessExpireMinutes)
	if err != nil {
		return 15 * time.Minute
	}

	return time.Duration(minutes) * time.Minute
}

// GetRefreshExpireDuration gets refresh token expiration duration from config
func GetRefreshExpireDuration() time.Duration {
	cfg := config.GetConfig()

	days, err := strconv.Atoi(cfg.JWTRefreshExpireDays)
	if err != nil {
		return 7 * 24 * time.Hour
	}

	return time.Duration(days) * 24 * time.Hour
}

func generate(claims Claims, secret []byte, expire time.Duration) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func validate(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GenerateAccessJWT issues a short-lived access token
func GenerateAccessJWT(userID uuid.UUID, email, role string) (string, error) {
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		Role:   role,
	}
	return generate(claims, accessSecret(), GetAccessExpireDuration())
}

// GenerateRefreshJWT issues a long-lived refresh token, delivered only
// via HTTP-only cookie
func GenerateRefreshJWT(userID uuid.UUID, email, role string) (string, error) {
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		Role:   role,
	}
	return generate(claims, refreshSecret(), GetRefreshExpireDuration())
}

// GenerateEmailVerificationJWT issues the 15-minute magic-link token
func GenerateEmailVerificationJWT(userID uuid.UUID, email string) (string, error) {
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
	}
	return generate(claims, emailVerificationSecret(), 15*time.Minute)
}

// GeneratePasswordResetJWT issues the 15-minute reset token carrying a
// purpose claim
func GeneratePasswordResetJWT(userID uuid.UUID, email string) (string, error) {
	claims := Claims{
		UserID:  userID.String(),
		Email:   email,
		Purpose: PurposePasswordReset,
	}
	return generate(claims, passwordResetSecret(), 15*time.Minute)
}

// ValidateAccessJWT validates an access token
func ValidateAccessJWT(tokenString string) (*Claims, error) {
	return validate(tokenString, accessSecret())
}

// ValidateRefreshJWT validates a refresh token
func ValidateRefreshJWT(tokenString string) (*Claims, error) {
	return validate(tokenString, refreshSecret())
}

// ValidateEmailVerificationJWT validates a magic-link token
func ValidateEmailVerificationJWT(tokenString string) (*Claims, error) {
	return validate(tokenString, emailVerificationSecret())
}

// ValidatePasswordResetJWT validates a reset token and its purpose claim
func ValidatePasswordResetJWT(tokenString string) (*Claims, error) {
	claims, err := validate(tokenString, passwordResetSecret())
	if err != nil {
		return nil, err
	}
	if claims.Purpose != PurposePasswordReset {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
