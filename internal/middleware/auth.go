package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"kanban-board-api/internal/response"
)

const (
	ContextUserID = "user_id"
	ContextToken  = "jwtToken"
)

func abortUnauthorized(c *gin.Context, message string) {
	response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, message)
	c.Abort()
}

// bearerToken reads "Authorization: Bearer <token>". Browsers cannot set headers on
// a websocket handshake, so an upgrade request may pass ?access_token= instead.
func bearerToken(c *gin.Context) (string, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if token := c.Query("access_token"); token != "" && c.IsWebsocket() {
			return token, ""
		}
		return "", "Authorization header is required"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", "Invalid authorization header format"
	}
	return parts[1], ""
}

// userIDFromClaims supports the claim names issued by the identity providers in use
func userIDFromClaims(claims jwt.MapClaims) (uuid.UUID, bool) {
	for _, key := range []string{"user_id", "sub", "uid"} {
		if raw, ok := claims[key].(string); ok {
			id, err := uuid.Parse(raw)
			return id, err == nil
		}
	}
	return uuid.Nil, false
}

// Auth returns a middleware that validates HMAC-signed JWT bearer tokens
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, problem := bearerToken(c)
		if problem != "" {
			abortUnauthorized(c, problem)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		userID, ok := userIDFromClaims(claims)
		if !ok {
			abortUnauthorized(c, "User ID not found in token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextToken, tokenString)

		c.Next()
	}
}
