// Package routers mounts every API route on a fiber app.
package routers

import (
	authControllers "educare/controllers/auth"
	quizController "educare/controllers/quiz"
	userProfileController "educare/controllers/userControllers"
	"educare/metrics"
	"educare/middleware"
	"educare/routers/authRoutes"
	"educare/routers/quizRoutes"
	userProfileRoutes "educare/routers/userRoutes"
	"educare/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Deps struct {
	Profiles *services.ProfileService
	Bank     *services.QuizBank
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

// Setup registers the API under prefix and the metrics endpoint at /metrics.
func Setup(app *fiber.App, prefix string, d Deps) {
	app.Get("/metrics", d.Metrics.Handler())

	api := app.Group(prefix, d.Metrics.Middleware())
	requireAuth := middleware.BearerAuth(d.Profiles)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRoutes.SetupAuthRoutes(api, authControllers.New(d.Profiles, d.Log), requireAuth)
	userProfileRoutes.SetupUserRoutes(api, userProfileController.New(d.Profiles, d.Log), requireAuth)
	quizRoutes.SetupQuizRoutes(api, quizController.New(d.Profiles, d.Bank, d.Log), requireAuth)
}
