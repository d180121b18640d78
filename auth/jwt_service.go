package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// jwtKey загружается из конфигурации через Configure; значение по
// умолчанию используется только пока конфигурация не применена.
var jwtKey = []byte("a_notes_go_development_key_replace_in_config")

var tokenTTL = 24 * time.Hour

// Configure задаёт ключ подписи и срок жизни токена из конфигурации.
func Configure(key string, ttl time.Duration) {
	if key != "" {
		jwtKey = []byte(key)
	}
	if ttl > 0 {
		tokenTTL = ttl
	}
}

// Claims структура для JWT.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken создает новый JWT для владельца.
func GenerateToken(username string) (string, time.Time, error) {
	expirationTime := time.Now().Add(tokenTTL)

	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "a_notes_go",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign token: %w", err)
	}

	return tokenString, expirationTime, nil
}

// ValidateToken проверяет JWT и возвращает claims, если токен валиден.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				return nil, fmt.Errorf("token is malformed")
			} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
				return nil, fmt.Errorf("token is expired or not active yet")
			}
		}
		return nil, fmt.Errorf("couldn't handle this token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	return claims, nil
}
