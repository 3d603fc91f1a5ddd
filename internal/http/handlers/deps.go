package handlers

import (
	"github.com/jmoiron/sqlx"

	"storefront/internal/repos"
	"storefront/internal/services"
)

// Deps wires repos and services into the handler set.
type Deps struct {
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
	ProductHandler   *ProductHandler
	CategoryHandler  *CategoryHandler
	CustomerHandler  *CustomerHandler
	InventoryHandler *InventoryHandler
	AdminHandler     *AdminHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	cartRepo := repos.NewCartRepo(db)
	prodRepo := repos.NewProductRepo(db)
	invRepo := repos.NewInventoryRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	custRepo := repos.NewCustomerRepo(db)
	catRepo := repos.NewCategoryRepo(db)

	cartSvc := services.NewCartService(db, cartRepo, prodRepo, invRepo)
	invSvc := services.NewInventoryService(invRepo)
	orderSvc := services.NewOrderService(orderRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo)
	catalogSvc := services.NewCatalogService(prodRepo, catRepo, cartSvc)
	custSvc := services.NewCustomerService(db, custRepo, cartRepo)

	return &Deps{
		CartHandler:      &CartHandler{Cart: cartSvc},
		OrderHandler:     &OrderHandler{Orders: orderSvc, Checkout: checkoutSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc},
		CustomerHandler:  &CustomerHandler{Customers: custSvc},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		AdminHandler:     &AdminHandler{Orders: orderSvc, Carts: cartSvc, Inv: invSvc},
	}
}
