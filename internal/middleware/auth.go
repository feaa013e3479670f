package middleware

import (
	"context"
	"strings"

	"kettolingo_backend/internal/config"
	"kettolingo_backend/internal/util"
	"kettolingo_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenBlocklist answers whether a token id has been revoked.
type TokenBlocklist interface {
	IsBlocked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware authenticates the request from a Bearer token and rejects
// tokens whose jti has been blocklisted at logout.
func AuthMiddleware(cfg *config.Config, blocklist TokenBlocklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		blocked, err := blocklist.IsBlocked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Log.Error("token blocklist check failed", zap.Error(err))
			util.InternalServerError(c)
			c.Abort()
			return
		}
		if blocked {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
