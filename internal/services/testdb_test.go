package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"storefront/internal/domain"
	"storefront/internal/repos"
	"storefront/internal/services"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	// one conn, one shared :memory: schema
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fixture struct {
	db *sqlx.DB

	Cart      *services.CartService
	Inventory *services.InventoryService
	Orders    *services.OrderService
	Checkout  *services.CheckoutService
	Catalog   *services.CatalogService
	Customers *services.CustomerService

	CustomerID string
	CartID     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	cartRepo := repos.NewCartRepo(db)
	prodRepo := repos.NewProductRepo(db)
	invRepo := repos.NewInventoryRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	custRepo := repos.NewCustomerRepo(db)
	catRepo := repos.NewCategoryRepo(db)

	f := &fixture{db: db}
	f.Cart = services.NewCartService(db, cartRepo, prodRepo, invRepo)
	f.Inventory = services.NewInventoryService(invRepo)
	f.Orders = services.NewOrderService(orderRepo)
	f.Checkout = services.NewCheckoutService(db, cartRepo, orderRepo)
	f.Catalog = services.NewCatalogService(prodRepo, catRepo, f.Cart)
	f.Customers = services.NewCustomerService(db, custRepo, cartRepo)

	var err error
	f.CustomerID, f.CartID, err = f.Customers.Register(services.Registration{
		Email:    "tester@example.com",
		Name:     "Tester",
		Password: "Passw0rd!",
	})
	require.NoError(t, err)

	return f
}

// seedProduct inserts a product with a plain price and no discount.
func (f *fixture) seedProduct(t *testing.T, id string, price float64, qty int) {
	t.Helper()
	err := repos.NewProductRepo(f.db).Insert(domain.Product{
		ID:           id,
		CategoryID:   "consoles",
		Name:         "Product " + id,
		Description:  "test product",
		ListPrice:    decimal.NewFromFloat(price),
		AvailableQty: qty,
		Active:       true,
	})
	require.NoError(t, err)
}

func (f *fixture) stock(t *testing.T, productID string) int {
	t.Helper()
	qty, err := repos.NewInventoryRepo(f.db).Qty(productID)
	require.NoError(t, err)
	return qty
}

func requireAmount(t *testing.T, want float64, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.NewFromFloat(want)), "want %v, got %s", want, got)
}
