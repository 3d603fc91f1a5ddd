package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"storefront/internal/config"
	"storefront/internal/http/handlers"
	applog "storefront/internal/log"
	"storefront/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db)

	api := app.Group("/api/v1")

	// Catalog
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Get("/categories", deps.CategoryHandler.List)
	api.Get("/availability", deps.InventoryHandler.Check)

	// Customers & carts
	api.Post("/customers", deps.CustomerHandler.Create)
	api.Get("/customers/:customerId/carts/:cartId", deps.CartHandler.Get)
	api.Post("/customers/:customerId/carts/:cartId/products/:productId", deps.CartHandler.AddLine)
	api.Put("/customers/:customerId/carts/:cartId/products/:productId", deps.CartHandler.UpdateLine)
	api.Delete("/customers/:customerId/carts/:cartId/products/:productId", deps.CartHandler.RemoveLine)

	// Checkout & orders
	api.Post("/customers/:customerId/carts/:cartId/payments/:method/order", deps.OrderHandler.Place)
	api.Get("/customers/:customerId/orders", deps.OrderHandler.History)
	api.Get("/customers/:customerId/orders/:orderId", deps.OrderHandler.Get)

	// Admin
	admin := api.Group("/admin")
	admin.Get("/orders", deps.AdminHandler.ListOrders)
	admin.Get("/carts", deps.AdminHandler.ListCarts)
	admin.Put("/customers/:customerId/orders/:orderId/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Post("/inventory/:productId/restock", deps.AdminHandler.Restock)
	admin.Post("/products", deps.ProductHandler.Create)
	admin.Put("/products/:id", deps.ProductHandler.Update)
	admin.Delete("/products/:id", deps.ProductHandler.Delete)
	admin.Post("/categories", deps.CategoryHandler.Create)
	admin.Delete("/categories/:id", deps.CategoryHandler.Delete)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}
