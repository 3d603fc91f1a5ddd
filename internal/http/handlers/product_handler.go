package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	applog "storefront/internal/log"
	"storefront/internal/services"
	"storefront/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

type productPayload struct {
	CategoryID      string          `json:"categoryId"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ListPrice       decimal.Decimal `json:"listPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	AvailableQty    int             `json:"availableQty"`
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(c.Query("categoryId"))
	if err != nil {
		return renderErr(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return renderErr(c, err)
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in productPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if _, ok := validate.Name(in.Name); !ok {
		return badRequest(c, "invalid product name")
	}

	p, err := h.Catalog.AddProduct(domain.Product{
		CategoryID:      in.CategoryID,
		Name:            in.Name,
		Description:     in.Description,
		ListPrice:       in.ListPrice,
		DiscountPercent: in.DiscountPercent,
		AvailableQty:    in.AvailableQty,
	})
	if err != nil {
		return renderErr(c, err)
	}
	applog.Audit(c, "catalog.product.create", map[string]any{"product": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var in productPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	p, err := h.Catalog.UpdateProduct(domain.Product{
		ID:              id,
		CategoryID:      in.CategoryID,
		Name:            in.Name,
		Description:     in.Description,
		ListPrice:       in.ListPrice,
		DiscountPercent: in.DiscountPercent,
		Active:          true,
	})
	if err != nil {
		return renderErr(c, err)
	}
	applog.Audit(c, "catalog.product.update", map[string]any{"product": id})
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return renderErr(c, err)
	}
	applog.Audit(c, "catalog.product.delete", map[string]any{"product": id})
	return c.SendStatus(fiber.StatusNoContent)
}
