package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs admin session tokens. Loaded from the environment;
// the fallback only exists so a fresh dev checkout boots.
var jwtSecretKey = secretFromEnv()

func secretFromEnv() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("A_VERY_SECURE_SECRET_KEY_REPLACE_LATER")
}

// GenerateToken creates a new JWT for a given admin ID.
func GenerateToken(adminID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": adminID,
		"exp": time.Now().Add(time.Hour * 72).Unix(), // Expires in 3 days
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string.
// It returns the admin ID (subject) if the token is valid.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token was signed with the same algorithm we use.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		return "", err // Token parsing failed (e.g., expired, malformed)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		adminID, ok := claims["sub"].(string)
		if !ok {
			return "", errors.New("invalid subject claim")
		}
		return adminID, nil
	}

	return "", errors.New("invalid token")
}
