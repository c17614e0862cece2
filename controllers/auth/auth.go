package authController

import (
	"educare/middleware"
	"educare/models"
	"educare/services"
	"educare/validators"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Controller handles the account routes.
type Controller struct {
	profiles *services.ProfileService
	log      *zap.Logger
}

// New returns the account handlers backed by profiles.
func New(profiles *services.ProfileService, log *zap.Logger) *Controller {
	return &Controller{profiles: profiles, log: log}
}

// Signup handles POST /signup.
func (h *Controller) Signup(c *fiber.Ctx) error {
	reqData := validators.Validated[models.SignupRequest](c)

	user, err := h.profiles.Signup(c.UserContext(), *reqData)
	if err != nil {
		return middleware.Fail(c, h.log, "during signup", err)
	}

	return middleware.Success(c, fiber.Map{
		"userId": user.ID,
		"user":   user,
	})
}

// Login handles POST /login.
func (h *Controller) Login(c *fiber.Ctx) error {
	reqData := validators.Validated[models.LoginRequest](c)

	session, user, err := h.profiles.Login(c.UserContext(), *reqData)
	if err != nil {
		return middleware.Fail(c, h.log, "during login", err)
	}

	return middleware.Success(c, fiber.Map{
		"accessToken": session.AccessToken,
		"user":        user,
	})
}

// ChangePassword handles POST /change-password.
func (h *Controller) ChangePassword(c *fiber.Ctx) error {
	reqData := validators.Validated[models.ChangePasswordRequest](c)

	if err := h.profiles.ChangePassword(c.UserContext(), middleware.UserID(c), *reqData); err != nil {
		return middleware.Fail(c, h.log, "changing password", err)
	}

	return middleware.Success(c, fiber.Map{"message": "Password updated successfully"})
}

// DeleteAccount handles DELETE /delete-account.
func (h *Controller) DeleteAccount(c *fiber.Ctx) error {
	if err := h.profiles.DeleteAccount(c.UserContext(), middleware.UserID(c)); err != nil {
		return middleware.Fail(c, h.log, "deleting account", err)
	}

	return middleware.Success(c, fiber.Map{"message": "Account deleted successfully"})
}
