package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/repos"
)

func TestInventoryService_CheckAvailability(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-in", 10.0, 6)
	f.seedProduct(t, "p-low", 10.0, 2)
	f.seedProduct(t, "p-out", 10.0, 0)

	a, err := f.Inventory.CheckAvailability("p-in")
	require.NoError(t, err)
	require.Equal(t, "IN_STOCK", a.Status)
	require.Equal(t, 6, a.Qty)

	a, err = f.Inventory.CheckAvailability("p-low")
	require.NoError(t, err)
	require.Equal(t, "LOW_STOCK", a.Status)

	a, err = f.Inventory.CheckAvailability("p-out")
	require.NoError(t, err)
	require.Equal(t, "OUT_OF_STOCK", a.Status)

	_, err = f.Inventory.CheckAvailability("missing")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestInventoryRepo_ReserveRelease(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-s", 10.0, 5)
	inv := repos.NewInventoryRepo(f.db)

	require.NoError(t, inv.Reserve("p-s", 3))
	require.Equal(t, 2, f.stock(t, "p-s"))

	// exactly at the boundary
	err := inv.Reserve("p-s", 3)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Equal(t, 2, f.stock(t, "p-s"))
	require.NoError(t, inv.Reserve("p-s", 2))
	require.Equal(t, 0, f.stock(t, "p-s"))

	require.NoError(t, inv.Release("p-s", 5))
	require.Equal(t, 5, f.stock(t, "p-s"))
}

func TestInventoryRepo_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	inv := repos.NewInventoryRepo(f.db)

	err := inv.Reserve("missing", 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	err = inv.Release("missing", 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = inv.Qty("missing")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestInventoryService_HasStock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-s", 10.0, 3)

	ok, err := f.Inventory.HasStock("p-s", 3)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = f.Inventory.HasStock("p-s", 4)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = f.Inventory.HasStock("p-s", 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestInventoryService_Restock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-s", 10.0, 1)

	require.NoError(t, f.Inventory.Restock("p-s", 4))
	require.Equal(t, 5, f.stock(t, "p-s"))

	err := f.Inventory.Restock("p-s", 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
}
