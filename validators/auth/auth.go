package authValidator

import (
	"educare/models"
	"educare/validators"

	"github.com/gofiber/fiber/v2"
)

// Signup validator middleware
func Signup() fiber.Handler {
	return validators.Body[models.SignupRequest]()
}

// Login validator middleware
func Login() fiber.Handler {
	return validators.Body[models.LoginRequest]()
}

func ChangePassword() fiber.Handler {
	return validators.Body[models.ChangePasswordRequest]()
}
