// Package validators holds the request-validating middleware that runs in
// front of each controller.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"educare/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BodyKey is the c.Locals key holding the validated request body.
const BodyKey = "validatedBody"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	return validate.Struct(s)
}

// Message turns a validation error into one readable sentence.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in the form %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

// Body parses the JSON request body into a T, validates it and stores it
// under BodyKey for the controller.
func Body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := Struct(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, Message(err))
		}
		c.Locals(BodyKey, reqData)
		return c.Next()
	}
}

// Validated returns the body stored by Body[T].
func Validated[T any](c *fiber.Ctx) *T {
	v, _ := c.Locals(BodyKey).(*T)
	return v
}
