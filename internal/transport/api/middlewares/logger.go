package middlewares

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"
)

// Logger пишет в logrus строку на каждый запрос: метод, путь, статус и длительность.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := l.WithFields(logrus.Fields{
			"Method":   c.Request.Method,
			"Path":     c.Request.URL.Path,
			"Status":   c.Writer.Status(),
			"Duration": time.Since(start).String(),
			"ClientIP": c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		entry.Info("request handled")
	}
}
