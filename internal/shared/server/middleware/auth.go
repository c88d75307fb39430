package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/portfolio/internal/shared/auth"
	"github.com/james-eo/portfolio/internal/shared/principal"
	"github.com/james-eo/portfolio/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userNameKey  = "userName"
	userRoleKey  = "userRole"
	sessionIDKey = "sessionId"
)

// Auth resolves the caller's identity and stores it in context. A Bearer
// token yields an authenticated user; the X-Session-Id header yields an
// anonymous session. Identity is optional here: handlers that need one
// enforce it themselves, and admin routes go through RequireAdmin.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
			claims, err := auth.VerifyToken(token)
			if err != nil {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}

			c.Set(userIDKey, claims.Subject)
			if claims.Email != "" {
				c.Set(userEmailKey, claims.Email)
			}
			if claims.Name != "" {
				c.Set(userNameKey, claims.Name)
			}
			c.Set(userRoleKey, claims.Role)
			c.Next()
			return
		}

		if sessionID := strings.TrimSpace(c.GetHeader("X-Session-Id")); sessionID != "" {
			c.Set(sessionIDKey, sessionID)
		}
		c.Next()
	}
}

// RequireAdmin rejects callers that are not authenticated administrators.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFromContext(c)
		if !p.Authenticated() {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Login required", nil)
			return
		}
		if !p.Admin() {
			respond.Error(c, http.StatusForbidden, "forbidden", "Admin access required", nil)
			return
		}
		c.Next()
	}
}

// PrincipalFromContext builds the caller's principal from values stored by Auth.
func PrincipalFromContext(c *gin.Context) principal.Principal {
	if c == nil {
		return principal.Principal{}
	}
	if userID := c.GetString(userIDKey); userID != "" {
		return principal.User(userID, principal.Role(c.GetString(userRoleKey)))
	}
	if sessionID := c.GetString(sessionIDKey); sessionID != "" {
		return principal.Session(sessionID)
	}
	return principal.Principal{}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userIDKey)
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userEmailKey)
}
