package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "storefront/internal/log"
	"storefront/internal/services"
	"storefront/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// AddLine handles POST /customers/:customerId/carts/:cartId/products/:productId?qty=
func (h *CartHandler) AddLine(c *fiber.Ctx) error {
	cartID, ok := validate.ID(c.Params("cartId"))
	if !ok {
		return badRequest(c, "invalid cart id")
	}
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	qty := validate.Qty(c.Query("qty", "1"))

	cart, err := h.Cart.AddLine(cartID, productID, qty)
	if err != nil {
		applog.Error(c, "cart.add", err, map[string]any{"cart": cartID, "product": productID})
		return renderErr(c, err)
	}
	applog.Info(c, "cart.add", map[string]any{"cart": cartID, "product": productID, "qty": qty})
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// UpdateLine handles PUT /customers/:customerId/carts/:cartId/products/:productId?qty=
func (h *CartHandler) UpdateLine(c *fiber.Ctx) error {
	cartID, ok := validate.ID(c.Params("cartId"))
	if !ok {
		return badRequest(c, "invalid cart id")
	}
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	qty := validate.Qty(c.Query("qty"))

	cart, err := h.Cart.UpdateLineQuantity(cartID, productID, qty)
	if err != nil {
		applog.Error(c, "cart.update", err, map[string]any{"cart": cartID, "product": productID})
		return renderErr(c, err)
	}
	return c.JSON(cart)
}

// RemoveLine handles DELETE /customers/:customerId/carts/:cartId/products/:productId
func (h *CartHandler) RemoveLine(c *fiber.Ctx) error {
	cartID, ok := validate.ID(c.Params("cartId"))
	if !ok {
		return badRequest(c, "invalid cart id")
	}
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "invalid product id")
	}

	cart, err := h.Cart.RemoveLine(cartID, productID)
	if err != nil {
		applog.Error(c, "cart.remove", err, map[string]any{"cart": cartID, "product": productID})
		return renderErr(c, err)
	}
	return c.JSON(cart)
}

// Get handles GET /customers/:customerId/carts/:cartId
func (h *CartHandler) Get(c *fiber.Ctx) error {
	customerID, ok := validate.ID(c.Params("customerId"))
	if !ok {
		return badRequest(c, "invalid customer id")
	}
	cartID, ok := validate.ID(c.Params("cartId"))
	if !ok {
		return badRequest(c, "invalid cart id")
	}

	cart, err := h.Cart.GetCart(customerID, cartID)
	if err != nil {
		return renderErr(c, err)
	}
	return c.JSON(cart)
}
