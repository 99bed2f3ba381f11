package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidAPIKey is returned for a missing, unknown or unconfigured key.
var ErrInvalidAPIKey = errors.New("invalid api key")

const tokenSubject = "farmbook"

// checkAPIKey compares key with the bcrypt hash from API_KEY_HASH.
func checkAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" || cfg.APIKeyHash == "" {
		return ErrInvalidAPIKey
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.APIKeyHash), []byte(key)); err != nil {
		return ErrInvalidAPIKey
	}
	return nil
}

func issueToken(now time.Time) (string, time.Time, error) {
	exp := now.Add(cfg.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": tokenSubject,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	})
	s, err := token.SignedString(jwtSecret)
	return s, exp, err
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		}, jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		sub, _ := token.Claims.GetSubject()
		c.Set("subject", sub)
		c.Next()
	}
}
