package userProfileRoutes

import (
	userProfileController "educare/controllers/userControllers"
	"educare/middleware"
	userProfileValidator "educare/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(router fiber.Router, ctrl *userProfileController.Controller, requireAuth fiber.Handler) {
	router.Post("/complete-profile", requireAuth, userProfileValidator.CompleteProfile(), ctrl.CompleteProfile)
	router.Post("/update-profile", requireAuth, userProfileValidator.UpdateProfile(), ctrl.UpdateProfile)
	router.Get("/profile/:userId", ctrl.GetProfile)
	router.Get("/profile/:userId/progress", requireAuth, middleware.OwnerOnly("userId"), ctrl.Progress)
}
