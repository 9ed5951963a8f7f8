package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError turns an error bubbling out of a handler (usually a
// *fiber.Error) into the consistent JSON shape via helper.Error.
// Anything else falls back to a generic 500 so internals never leak.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "Internal Server Error")
}
