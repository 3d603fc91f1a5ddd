package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/services"
	"storefront/internal/validate"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// Check handles GET /availability?productId=&qty=
func (h *InventoryHandler) Check(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Query("productId"))
	if !ok {
		return badRequest(c, "invalid productId")
	}

	if q := c.Query("qty"); q != "" {
		okStock, err := h.Inv.HasStock(productID, validate.Qty(q))
		if err != nil {
			return renderErr(c, err)
		}
		return c.JSON(fiber.Map{"available": okStock})
	}

	av, err := h.Inv.CheckAvailability(productID)
	if err != nil {
		return renderErr(c, err)
	}
	return c.JSON(av)
}
