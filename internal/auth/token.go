/* JWT 토큰 생성 및 검증을 위한 유틸리티 함수들 */

package auth

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	tokenIssuer  = "weightloss-datagen-api"
	tokenSubject = "user_auth_token"
	tokenTTL     = 24 * time.Hour
)

var (
	keyMu  sync.RWMutex
	jwtKey = []byte("default_secret_key")
)

// SetSigningKey replaces the HMAC key used for new and incoming tokens.
func SetSigningKey(key string) {
	if key == "" {
		log.Println("Warning: empty JWT signing key ignored, keeping the current key.")
		return
	}
	keyMu.Lock()
	jwtKey = []byte(key)
	keyMu.Unlock()
}

func signingKey() []byte {
	keyMu.RLock()
	defer keyMu.RUnlock()
	return jwtKey
}

// Claims 구조체 정의, JWT 페이로드에 사용자명 포함
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWT 토큰 생성
func GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// JWT 토큰 검증
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Issuer != tokenIssuer {
		return nil, jwt.ErrTokenInvalidIssuer
	}
	return claims, nil
}

// IsExpired reports whether err came from an expired token.
func IsExpired(err error) bool {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors&jwt.ValidationErrorExpired != 0
	}
	return errors.Is(err, jwt.ErrTokenExpired)
}
