package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audience razdvaja sesijske tokene od reset tokena - jedni ne prolaze
// tamo gde se očekuju drugi.
const (
	audienceSession = "session"
	audienceReset   = "password-reset"
)

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken kreira auth token za sesiju, važi 2 sata. Subject nosi ID
// naloga da bi se sesija mogla razrešiti u člana tima bez dodatnog upita.
func GenerateToken(userID, email, role string) (string, error) {
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{audienceSession},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// GenerateResetToken kreira token sa email adresom kao claim za reset lozinke.
// Token važi 24 sata.
func GenerateResetToken(email string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{audienceReset},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken proverava sesijski token. Token bez roka važenja se odbija.
func ValidateToken(tokenStr string) (*Claims, error) {
	claims, err := parseToken(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("token has expired")
	}
	if !hasAudience(claims, audienceSession) {
		return nil, fmt.Errorf("not a session token")
	}
	return claims, nil
}

// ValidateResetToken proverava reset token i vraća email adresu iz claim-a.
func ValidateResetToken(tokenStr string) (string, error) {
	claims, err := parseToken(tokenStr)
	if err != nil {
		return "", err
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return "", fmt.Errorf("token has expired")
	}
	if !hasAudience(claims, audienceReset) {
		return "", fmt.Errorf("not a password reset token")
	}
	return claims.Email, nil
}

func hasAudience(claims *Claims, audience string) bool {
	for _, a := range claims.Audience {
		if a == audience {
			return true
		}
	}
	return false
}

func parseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
