// Package middleware provides gin middleware shared by the REST API:
// bearer token authentication and request metrics.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/config"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SubjectKey is the gin context key under which the authenticated subject
// is stored.
const SubjectKey = "authSubject"

type authError struct {
	Message string `json:"message"`
}

// RequireAuth returns middleware that rejects requests without a valid
// HS256 bearer token. The token subject is stored in the gin context.
// When auth is disabled in the settings the middleware is a no-op.
func RequireAuth(settings *config.AuthSettings, logger logger.Logger) gin.HandlerFunc {
	if !settings.Enabled {
		return func(ctx *gin.Context) {
			ctx.Next()
		}
	}

	secret := []byte(settings.Secret)

	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, authError{Message: "missing bearer token"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
		if settings.Issuer != "" {
			opts = append(opts, jwt.WithIssuer(settings.Issuer))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		}, opts...)
		if err != nil {
			logger.Warn("Rejected request with invalid token: ", err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, authError{Message: "invalid token"})
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, authError{Message: "token has no subject"})
			return
		}

		ctx.Set(SubjectKey, subject)
		ctx.Next()
	}
}
