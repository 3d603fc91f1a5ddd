package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "storefront/internal/log"
	"storefront/internal/services"
	"storefront/internal/validate"
)

type AdminHandler struct {
	Orders *services.OrderService
	Carts  *services.CartService
	Inv    *services.InventoryService
}

// ListOrders handles GET /admin/orders?limit=
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	orders, err := h.Orders.ListOrders(limit)
	if err != nil {
		return renderErr(c, err)
	}
	return c.JSON(orders)
}

// ListCarts handles GET /admin/carts
func (h *AdminHandler) ListCarts(c *fiber.Ctx) error {
	carts, err := h.Carts.ListCarts()
	if err != nil {
		return renderErr(c, err)
	}
	return c.JSON(carts)
}

// UpdateOrderStatus handles PUT /admin/customers/:customerId/orders/:orderId/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	customerID, ok := validate.ID(c.Params("customerId"))
	if !ok {
		return badRequest(c, "invalid customer id")
	}
	orderID, ok := validate.ID(c.Params("orderId"))
	if !ok {
		return badRequest(c, "invalid order id")
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	status, ok := validate.Status(in.Status)
	if !ok {
		return badRequest(c, "invalid status")
	}

	if err := h.Orders.UpdateStatus(customerID, orderID, status); err != nil {
		return renderErr(c, err)
	}
	applog.Audit(c, "admin.order.status", map[string]any{"order": orderID, "status": status})
	return c.SendStatus(fiber.StatusNoContent)
}

// Restock handles POST /admin/inventory/:productId/restock?qty=
func (h *AdminHandler) Restock(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	qty := validate.Qty(c.Query("qty"))

	if err := h.Inv.Restock(productID, qty); err != nil {
		return renderErr(c, err)
	}
	applog.Audit(c, "admin.inventory.restock", map[string]any{"product": productID, "qty": qty})
	return c.SendStatus(fiber.StatusNoContent)
}
