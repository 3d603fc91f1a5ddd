package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/domain"
)

// renderErr maps every domain error kind onto a transport status. Unknown
// errors are infrastructure failures and stay opaque.
func renderErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrLineNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrNoOrdersFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateLine),
		errors.Is(err, domain.ErrPaymentAlreadyAttached):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrProductUnavailable),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrEmptyLineSet):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidQuantity):
		status = fiber.StatusBadRequest
	}

	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "internal error" // avoid leaking internals
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
