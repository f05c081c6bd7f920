package helpers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// genericWriteError is the single user-facing failure text for store
// writes. Permission failures and connectivity failures are deliberately
// indistinguishable here; the detail goes to the server log only.
const genericWriteError = "The operation could not be completed. Please try again."

// Mutation funnels every create/update handler through one response shape:
// a confirmation on success, a generic destructive error otherwise. Nothing
// is retried; recovery is the user resubmitting.
func Mutation(c *fiber.Ctx, err error, okMessage string, data interface{}) error {
	if err != nil {
		log.Printf("Mutation failed on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   genericWriteError,
		})
	}

	resp := fiber.Map{
		"success": true,
		"message": okMessage,
	}
	if data != nil {
		resp["data"] = data
	}
	return c.JSON(resp)
}
