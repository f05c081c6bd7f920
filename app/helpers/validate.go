package helpers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validate checks a request struct against its validate tags. Failures are
// surfaced as a 400 with a field -> tag map so each message can render next
// to the offending field; they never reach the database.
func Validate(c *fiber.Ctx, req interface{}) (ok bool, err error) {
	if vErr := validate.Struct(req); vErr != nil {
		ve, isValidation := vErr.(validator.ValidationErrors)
		if !isValidation {
			return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid input",
			})
		}

		fields := make(map[string]string, len(ve))
		for _, fieldErr := range ve {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"fields":  fields,
		})
	}
	return true, nil
}
