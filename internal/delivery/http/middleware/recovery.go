package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shuttle-hr/internal/pkg/report"
	"go.uber.org/zap"
)

// Recovery - перехват паники: лог со стеком и отправка в Sentry.
// Ответ формирует общий ErrorHandler (500 INTERNAL_SERVER_ERROR).
func Recovery(logger *zap.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Error("Panic recovered",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("request_id", requestIDOf(c)),
				zap.Any("panic", e),
				zap.ByteString("stack", debug.Stack()),
			)
			report.ReportErrorWithOptions(fmt.Errorf("panic: %v", e), report.Options{
				Tags: map[string]string{
					"path":       c.Path(),
					"request_id": requestIDOf(c),
				},
				Level: sentry.LevelFatal,
			})
		},
	})
}
