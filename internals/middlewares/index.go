package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "jaleifoundation_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the global middleware stack. CORS must run
// before the route handlers so preflights never hit business code.
func SetupMiddlewares(app *fiber.App, allowedOrigins []string) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(allowedOrigins))
	app.Use(GlobalRateLimiter())
	app.Use(loggerMW.LoggerMiddleware())
}
