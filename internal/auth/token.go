package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenGenerator signs session tokens with HS256. There is no refresh
// token and no revocation list: a token stays valid until its 7-day expiry
// even after logout. Deactivation is still immediate because the guard
// re-reads the account on every request.
type JWTTokenGenerator struct {
	SessionSecret []byte
	SessionTTL    time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &JWTTokenGenerator{
		SessionSecret: []byte(secret),
		SessionTTL:    ttl,
	}
}

func (j *JWTTokenGenerator) GenerateSessionToken(accountID int64, email string) (string, error) {
	now := time.Now()

	claims := &Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(accountID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.SessionSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.SessionSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrUnauthenticated
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrUnauthenticated
}
