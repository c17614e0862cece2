package userValidator

import (
	"errors"
	"strings"
	"unicode/utf8"

	"educare/middleware"
	"educare/models"
	"educare/utils"
	"educare/validators"

	"github.com/gofiber/fiber/v2"
)

const maxNameLength = 100

// ProfileUpdate is the parsed multipart body of update-profile.
type ProfileUpdate struct {
	Name  string
	Photo *models.Photo
}

func CompleteProfile() fiber.Handler {
	return validators.Body[models.CompleteProfileRequest]()
}

// UpdateProfile parses the multipart form: an optional name and an optional
// photo file.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Expected a multipart form")
		}

		update := &ProfileUpdate{}
		if names := form.Value["name"]; len(names) > 0 {
			update.Name = strings.TrimSpace(names[0])
		}
		if utf8.RuneCountInString(update.Name) > maxNameLength {
			return middleware.Error(c, fiber.StatusBadRequest, "name must be at most 100 characters long")
		}

		if files := form.File["photo"]; len(files) > 0 && files[0].Size > 0 {
			contentType, data, err := utils.ReadUploadedFile(files[0])
			if errors.Is(err, utils.ErrFileTooLarge) {
				return middleware.Error(c, fiber.StatusBadRequest, "photo must be at most 5 MB")
			}
			if err != nil {
				return middleware.Error(c, fiber.StatusBadRequest, "Could not read photo")
			}
			update.Photo = &models.Photo{ContentType: contentType, Data: data}
		}

		c.Locals(validators.BodyKey, update)
		return c.Next()
	}
}
