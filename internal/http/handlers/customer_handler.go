package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "storefront/internal/log"
	"storefront/internal/services"
	"storefront/internal/validate"
)

type CustomerHandler struct {
	Customers *services.CustomerService
}

// Create handles POST /customers. Registering a customer also creates their
// cart; both ids come back so a client can start adding lines immediately.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return badRequest(c, "invalid email")
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return badRequest(c, "invalid name")
	}

	customerID, cartID, err := h.Customers.Register(services.Registration{
		Email:    email,
		Name:     name,
		Password: in.Password,
	})
	if err != nil {
		applog.Error(c, "customer.register", err, nil)
		return renderErr(c, err)
	}
	applog.Audit(c, "customer.register", map[string]any{"customer": customerID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"customerId": customerID,
		"cartId":     cartID,
	})
}
