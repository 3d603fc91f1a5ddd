package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "storefront/internal/log"
	"storefront/internal/services"
	"storefront/internal/validate"
)

type OrderHandler struct {
	Orders   *services.OrderService
	Checkout *services.CheckoutService
}

// Place handles POST /customers/:customerId/carts/:cartId/payments/:method/order
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	customerID, ok := validate.ID(c.Params("customerId"))
	if !ok {
		return badRequest(c, "invalid customer id")
	}
	cartID, ok := validate.ID(c.Params("cartId"))
	if !ok {
		return badRequest(c, "invalid cart id")
	}
	method, ok := validate.Method(c.Params("method"))
	if !ok {
		return badRequest(c, "invalid payment method")
	}

	order, err := h.Checkout.PlaceOrder(customerID, cartID, method)
	if err != nil {
		applog.Error(c, "order.place", err, map[string]any{"customer": customerID, "cart": cartID})
		return renderErr(c, err)
	}
	applog.Audit(c, "order.place", map[string]any{
		"customer": customerID, "order": order.ID, "total": order.TotalAmount.String(),
	})
	return c.Status(fiber.StatusCreated).JSON(order)
}

// Get handles GET /customers/:customerId/orders/:orderId
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	customerID, ok := validate.ID(c.Params("customerId"))
	if !ok {
		return badRequest(c, "invalid customer id")
	}
	orderID, ok := validate.ID(c.Params("orderId"))
	if !ok {
		return badRequest(c, "invalid order id")
	}

	order, err := h.Orders.GetOrder(customerID, orderID)
	if err != nil {
		return renderErr(c, err)
	}
	return c.JSON(order)
}

// History handles GET /customers/:customerId/orders
func (h *OrderHandler) History(c *fiber.Ctx) error {
	customerID, ok := validate.ID(c.Params("customerId"))
	if !ok {
		return badRequest(c, "invalid customer id")
	}

	orders, err := h.Orders.ListOrdersByCustomer(customerID)
	if err != nil {
		return renderErr(c, err)
	}
	return c.JSON(orders)
}
