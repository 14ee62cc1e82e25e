package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Stack bundles the middleware every feature module mounts, built once at
// startup.
type Stack struct {
	Auth          gin.HandlerFunc
	ContextLogger gin.HandlerFunc
	Idempotency   gin.HandlerFunc
}

func NewStack(jwtSecret string, rdb *redis.Client, logger *zap.Logger) Stack {
	return Stack{
		Auth:          AuthMiddleware(jwtSecret),
		ContextLogger: ContextLogger(logger),
		Idempotency:   Idempotency(rdb, logger),
	}
}

// Protected is the chain for authenticated route groups.
func (s Stack) Protected() []gin.HandlerFunc {
	return []gin.HandlerFunc{s.Auth, ExtractUserID(), s.ContextLogger}
}
