package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const userIdContextKey = "userID"

// authMiddleware validates the Bearer token on persistence routes and
// stashes the caller's user id in the gin context. Everything else on the
// API is anonymous by design - the engine itself has no notion of a user.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, 401)
		return
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(m.JwtSecret), nil
	})
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse token: %w", err), c, 401)
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		returnErrorJsonCode(fmt.Errorf("invalid token"), c, 401)
		return
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("token subject is not a user id: %w", err), c, 401)
		return
	}

	c.Set(userIdContextKey, userID)
	c.Next()
}

func userIdFromContext(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(userIdContextKey)
	if !ok {
		return uuid.Nil, fmt.Errorf("no user id on request context")
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("no user id on request context")
	}
	return userID, nil
}
