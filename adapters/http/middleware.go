package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/internal/application/session"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

const (
	GinContextKeySession = "session"
)

// SessionResolver maps a bearer token to an open session.
type SessionResolver interface {
	Resolve(token string) (*session.Session, error)
}

func AuthMiddleware(resolver SessionResolver, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperror.NewUnauthorized("Authorization header is required", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Error(apperror.NewUnauthorized("Invalid token format", nil))
			c.Abort()
			return
		}

		s, err := resolver.Resolve(tokenString)
		if err != nil {
			log.Debug("Rejected token", zap.Error(err))
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(GinContextKeySession, s)

		c.Next()
	}
}

func GetSessionFromGinContext(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(GinContextKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

// ErrorMiddleware renders the last error a handler attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := apperror.From(c.Errors.Last().Err)
		status := apperror.ToHTTPStatus(appErr)
		fields := []zap.Field{zap.String("path", c.FullPath()), zap.Int("status", status)}
		if status >= 500 {
			log.Error("Request failed", appErr, fields...)
		} else {
			log.Warn("Request rejected", append(fields, zap.String("details", appErr.Details))...)
		}

		if !c.Writer.Written() {
			c.JSON(status, appErr.ToJSON())
		}
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
