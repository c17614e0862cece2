package authRoutes

import (
	authControllers "educare/controllers/auth"
	authValidators "educare/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(router fiber.Router, ctrl *authControllers.Controller, requireAuth fiber.Handler) {
	router.Post("/signup", authValidators.Signup(), ctrl.Signup)
	router.Post("/login", authValidators.Login(), ctrl.Login)
	router.Post("/change-password", requireAuth, authValidators.ChangePassword(), ctrl.ChangePassword)
	router.Delete("/delete-account", requireAuth, ctrl.DeleteAccount)
}
