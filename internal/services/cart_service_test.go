package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func TestCartService_AddLine(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 10)

	cart, err := f.Cart.AddLine(f.CartID, "p-45", 2)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	require.Equal(t, 2, cart.Lines[0].Qty)
	requireAmount(t, 45.0, cart.Lines[0].UnitPrice)
	requireAmount(t, 90.0, cart.TotalPrice)
	require.Equal(t, 8, f.stock(t, "p-45"))
	require.NoError(t, f.Cart.VerifyTotal(f.CartID))
}

func TestCartService_AddLine_SnapshotsDiscountedPrice(t *testing.T) {
	f := newFixture(t)

	// seeded nes-001: 199.00 list, 10% discount -> 179.10 effective
	cart, err := f.Cart.AddLine(f.CartID, "nes-001", 1)
	require.NoError(t, err)
	requireAmount(t, 179.10, cart.Lines[0].UnitPrice)
	requireAmount(t, 10, cart.Lines[0].Discount)
	requireAmount(t, 179.10, cart.TotalPrice)
}

func TestCartService_AddLine_Duplicate(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 10)

	_, err := f.Cart.AddLine(f.CartID, "p-45", 2)
	require.NoError(t, err)

	_, err = f.Cart.AddLine(f.CartID, "p-45", 1)
	require.ErrorIs(t, err, domain.ErrDuplicateLine)

	// still one line, inventory untouched by the failed call
	cart, err := f.Cart.GetCart(f.CustomerID, f.CartID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, 8, f.stock(t, "p-45"))
}

func TestCartService_AddLine_InsufficientStock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-scarce", 45.0, 3)

	_, err := f.Cart.AddLine(f.CartID, "p-scarce", 5)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// cart and inventory unchanged
	cart, err := f.Cart.GetCart(f.CustomerID, f.CartID)
	require.NoError(t, err)
	require.Empty(t, cart.Lines)
	requireAmount(t, 0, cart.TotalPrice)
	require.Equal(t, 3, f.stock(t, "p-scarce"))
}

func TestCartService_AddLine_OutOfStock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-gone", 45.0, 0)

	_, err := f.Cart.AddLine(f.CartID, "p-gone", 1)
	require.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestCartService_AddLine_UnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, err := f.Cart.AddLine(f.CartID, "nope", 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCartService_AddLine_RejectsZeroQty(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 10)

	_, err := f.Cart.AddLine(f.CartID, "p-45", 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCartService_UpdateLineQuantity(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 10)

	_, err := f.Cart.AddLine(f.CartID, "p-45", 2)
	require.NoError(t, err)

	// grow: reserves the delta
	cart, err := f.Cart.UpdateLineQuantity(f.CartID, "p-45", 5)
	require.NoError(t, err)
	requireAmount(t, 225.0, cart.TotalPrice)
	require.Equal(t, 5, f.stock(t, "p-45"))

	// shrink: releases the delta
	cart, err = f.Cart.UpdateLineQuantity(f.CartID, "p-45", 1)
	require.NoError(t, err)
	requireAmount(t, 45.0, cart.TotalPrice)
	require.Equal(t, 9, f.stock(t, "p-45"))
	require.NoError(t, f.Cart.VerifyTotal(f.CartID))
}

func TestCartService_UpdateLineQuantity_DeltaCheck(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 5)

	_, err := f.Cart.AddLine(f.CartID, "p-45", 3)
	require.NoError(t, err)
	require.Equal(t, 2, f.stock(t, "p-45"))

	// 2 on hand + 3 already held = 5, so 5 is fine but 6 is not
	_, err = f.Cart.UpdateLineQuantity(f.CartID, "p-45", 6)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	cart, err := f.Cart.UpdateLineQuantity(f.CartID, "p-45", 5)
	require.NoError(t, err)
	requireAmount(t, 225.0, cart.TotalPrice)
	require.Equal(t, 0, f.stock(t, "p-45"))
}

func TestCartService_UpdateLineQuantity_RejectsZero(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 10)

	_, err := f.Cart.AddLine(f.CartID, "p-45", 2)
	require.NoError(t, err)

	_, err = f.Cart.UpdateLineQuantity(f.CartID, "p-45", 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCartService_UpdateLineQuantity_LineNotFound(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 10)

	_, err := f.Cart.UpdateLineQuantity(f.CartID, "p-45", 2)
	require.ErrorIs(t, err, domain.ErrLineNotFound)
}

func TestCartService_RemoveLine_RoundTrip(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 10)

	_, err := f.Cart.AddLine(f.CartID, "p-45", 3)
	require.NoError(t, err)
	require.Equal(t, 7, f.stock(t, "p-45"))

	cart, err := f.Cart.RemoveLine(f.CartID, "p-45")
	require.NoError(t, err)

	// back to the pre-add state
	require.Empty(t, cart.Lines)
	requireAmount(t, 0, cart.TotalPrice)
	require.Equal(t, 10, f.stock(t, "p-45"))

	// a second remove reports the missing line instead of no-oping
	_, err = f.Cart.RemoveLine(f.CartID, "p-45")
	require.ErrorIs(t, err, domain.ErrLineNotFound)
}

func TestCartService_GetCart_OwnershipIsPartOfTheKey(t *testing.T) {
	f := newFixture(t)

	_, err := f.Cart.GetCart("someone-else", f.CartID)
	require.ErrorIs(t, err, domain.ErrCartNotFound)

	_, err = f.Cart.GetCart(f.CustomerID, "no-such-cart")
	require.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestCartService_TotalInvariantAcrossMutations(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-a", 12.50, 20)
	f.seedProduct(t, "p-b", 7.99, 20)

	_, err := f.Cart.AddLine(f.CartID, "p-a", 4)
	require.NoError(t, err)
	require.NoError(t, f.Cart.VerifyTotal(f.CartID))

	_, err = f.Cart.AddLine(f.CartID, "p-b", 2)
	require.NoError(t, err)
	require.NoError(t, f.Cart.VerifyTotal(f.CartID))

	_, err = f.Cart.UpdateLineQuantity(f.CartID, "p-a", 1)
	require.NoError(t, err)
	require.NoError(t, f.Cart.VerifyTotal(f.CartID))

	_, err = f.Cart.RemoveLine(f.CartID, "p-b")
	require.NoError(t, err)
	require.NoError(t, f.Cart.VerifyTotal(f.CartID))

	cart, err := f.Cart.GetCart(f.CustomerID, f.CartID)
	require.NoError(t, err)
	requireAmount(t, 12.50, cart.TotalPrice)
}

func TestCartService_RepriceProduct(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 10)

	_, err := f.Cart.AddLine(f.CartID, "p-45", 2)
	require.NoError(t, err)

	// catalog price drops; the snapshot stays frozen until repricing runs
	p, err := f.Catalog.GetProduct("p-45")
	require.NoError(t, err)
	p.ListPrice = decimal.NewFromFloat(30.0)
	_, err = f.Catalog.UpdateProduct(p)
	require.NoError(t, err)

	cart, err := f.Cart.GetCart(f.CustomerID, f.CartID)
	require.NoError(t, err)
	require.Equal(t, 2, cart.Lines[0].Qty, "repricing must not change quantity")
	requireAmount(t, 30.0, cart.Lines[0].UnitPrice)
	requireAmount(t, 60.0, cart.TotalPrice)
	require.Equal(t, 8, f.stock(t, "p-45"), "repricing must not move inventory")
	require.NoError(t, f.Cart.VerifyTotal(f.CartID))
}

func TestCartService_ListCarts(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-45", 45.0, 10)

	_, err := f.Cart.AddLine(f.CartID, "p-45", 2)
	require.NoError(t, err)

	carts, err := f.Cart.ListCarts()
	require.NoError(t, err)
	require.Len(t, carts, 1)
	require.Equal(t, f.CustomerID, carts[0].CustomerID)
	require.Len(t, carts[0].Lines, 1)
}

func TestCartService_StockNeverNegative(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p-lim", 45.0, 4)

	_, err := f.Cart.AddLine(f.CartID, "p-lim", 4)
	require.NoError(t, err)
	require.Equal(t, 0, f.stock(t, "p-lim"))

	_, err = f.Cart.UpdateLineQuantity(f.CartID, "p-lim", 5)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Equal(t, 0, f.stock(t, "p-lim"))
}
