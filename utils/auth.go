// utils/auth.go
package utils

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"goldentouch-backend/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// GenerateToken signs a JWT for a logged-in identity. Expiry defaults to
// 24h, overridable with JWT_EXPIRY_HOURS.
func GenerateToken(identity session.Identity) (string, error) {
	expiryHours := 24
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}

	role := RoleUser
	sub := strconv.FormatUint(uint64(identity.ClientID), 10)
	if identity.Admin {
		role = RoleAdmin
		sub = "admin"
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"name": identity.Name,
		"role": role,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// AuthMiddleware validates the bearer token and stores the caller's role,
// name and client id in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header required"})
			return
		}

		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		role, _ := claims["role"].(string)
		name, _ := claims["name"].(string)
		c.Set("role", role)
		c.Set("name", name)

		if sub, _ := claims["sub"].(string); sub != "" && sub != "admin" {
			if id, err := strconv.ParseUint(sub, 10, 64); err == nil {
				c.Set("clientId", uint(id))
			}
		}

		c.Next()
	}
}

// AdminOnly rejects callers without the admin role. Must run after
// AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get("role"); role != RoleAdmin {
			c.AbortWithStatusJSON(403, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CallerClientID returns the client id stored by AuthMiddleware, or false
// for admin callers.
func CallerClientID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("clientId")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
