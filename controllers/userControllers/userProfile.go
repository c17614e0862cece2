package userProfileController

import (
	"educare/middleware"
	"educare/models"
	"educare/services"
	"educare/validators"
	"educare/validators/userValidator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Controller handles the profile routes.
type Controller struct {
	profiles *services.ProfileService
	log      *zap.Logger
}

// New returns the profile handlers backed by profiles.
func New(profiles *services.ProfileService, log *zap.Logger) *Controller {
	return &Controller{profiles: profiles, log: log}
}

// CompleteProfile handles POST /complete-profile.
func (h *Controller) CompleteProfile(c *fiber.Ctx) error {
	reqData := validators.Validated[models.CompleteProfileRequest](c)

	user, err := h.profiles.CompleteProfile(c.UserContext(), middleware.UserID(c), *reqData)
	if err != nil {
		return middleware.Fail(c, h.log, "completing profile", err)
	}
	return middleware.Success(c, fiber.Map{"user": user})
}

// GetProfile handles GET /profile/:userId.
func (h *Controller) GetProfile(c *fiber.Ctx) error {
	user, err := h.profiles.GetProfile(c.UserContext(), c.Params("userId"))
	if err != nil {
		return middleware.Fail(c, h.log, "getting profile", err)
	}
	return middleware.Success(c, fiber.Map{"user": user})
}

// UpdateProfile handles the multipart POST /update-profile.
func (h *Controller) UpdateProfile(c *fiber.Ctx) error {
	update := validators.Validated[userValidator.ProfileUpdate](c)

	user, err := h.profiles.UpdateProfile(c.UserContext(), middleware.UserID(c), update.Name, update.Photo)
	if err != nil {
		return middleware.Fail(c, h.log, "updating profile", err)
	}
	return middleware.Success(c, fiber.Map{"user": user})
}

// Progress handles GET /profile/:userId/progress.
func (h *Controller) Progress(c *fiber.Ctx) error {
	progress, err := h.profiles.Progress(c.UserContext(), c.Params("userId"))
	if err != nil {
		return middleware.Fail(c, h.log, "getting progress", err)
	}
	return middleware.Success(c, fiber.Map{"progress": progress})
}
