package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"storefront/internal/domain"
	"storefront/internal/repos"
)

// CartService owns the cart line lifecycle. Every mutation runs in one
// transaction spanning the line write, the inventory movement, and the
// denormalized total update, so the total always equals the sum of the lines.
type CartService struct {
	db    *sqlx.DB
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
	Inv   *repos.InventoryRepo
}

func NewCartService(db *sqlx.DB, carts *repos.CartRepo, prods *repos.ProductRepo, inv *repos.InventoryRepo) *CartService {
	return &CartService{db: db, Carts: carts, Prods: prods, Inv: inv}
}

// AddLine puts a product into the cart with a frozen price snapshot and
// reserves its stock. A product may appear on at most one line per cart.
func (s *CartService) AddLine(cartID, productID string, qty int) (domain.Cart, error) {
	if qty <= 0 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return domain.Cart{}, err
	}
	defer func() { _ = tx.Rollback() }()

	carts := s.Carts.WithTx(tx)
	inv := s.Inv.WithTx(tx)

	cart, err := carts.Get(cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	p, err := s.Prods.WithTx(tx).Get(productID)
	if err != nil {
		return domain.Cart{}, err
	}

	if _, err := carts.Line(cartID, productID); err == nil {
		return domain.Cart{}, fmt.Errorf("product %s in cart %s: %w", productID, cartID, domain.ErrDuplicateLine)
	} else if !errors.Is(err, domain.ErrLineNotFound) {
		return domain.Cart{}, err
	}

	if p.AvailableQty == 0 {
		return domain.Cart{}, fmt.Errorf("product %s: %w", productID, domain.ErrProductUnavailable)
	}
	if qty > p.AvailableQty {
		return domain.Cart{}, fmt.Errorf("product %s (need %d, have %d): %w",
			productID, qty, p.AvailableQty, domain.ErrInsufficientStock)
	}

	if err := inv.Reserve(productID, qty); err != nil {
		return domain.Cart{}, err
	}

	line := domain.CartLine{
		ID:        uuid.NewString(),
		CartID:    cartID,
		ProductID: productID,
		Qty:       qty,
		UnitPrice: p.EffectivePrice(),
		Discount:  p.DiscountPercent,
	}
	if err := carts.InsertLine(line); err != nil {
		return domain.Cart{}, err
	}
	if err := carts.SetTotal(cartID, cart.TotalPrice.Add(line.Subtotal())); err != nil {
		return domain.Cart{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Cart{}, err
	}
	return s.projection(cartID)
}

// UpdateLineQuantity changes a line's quantity, moving inventory by the signed
// delta and re-snapshotting the price from the current product state. Called
// with the existing quantity it only refreshes the snapshot (repricing).
func (s *CartService) UpdateLineQuantity(cartID, productID string, newQty int) (domain.Cart, error) {
	if newQty <= 0 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return domain.Cart{}, err
	}
	defer func() { _ = tx.Rollback() }()

	carts := s.Carts.WithTx(tx)
	inv := s.Inv.WithTx(tx)

	cart, err := carts.Get(cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	p, err := s.Prods.WithTx(tx).Get(productID)
	if err != nil {
		return domain.Cart{}, err
	}
	line, err := carts.Line(cartID, productID)
	if err != nil {
		return domain.Cart{}, err
	}

	// Delta-based stock check: the line's current quantity is already
	// reserved, so only the increase needs fresh stock.
	switch delta := newQty - line.Qty; {
	case delta > 0:
		if err := inv.Reserve(productID, delta); err != nil {
			return domain.Cart{}, err
		}
	case delta < 0:
		if err := inv.Release(productID, -delta); err != nil {
			return domain.Cart{}, err
		}
	}

	newUnit := p.EffectivePrice()
	if err := carts.UpdateLine(line.ID, newQty, newUnit, p.DiscountPercent); err != nil {
		return domain.Cart{}, err
	}

	updated := line
	updated.Qty = newQty
	updated.UnitPrice = newUnit
	total := cart.TotalPrice.Sub(line.Subtotal()).Add(updated.Subtotal())
	if err := carts.SetTotal(cartID, total); err != nil {
		return domain.Cart{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Cart{}, err
	}
	return s.projection(cartID)
}

// RemoveLine deletes a line and releases its reservation back to the ledger.
// A repeated call fails with the not-found kind rather than silently no-oping.
func (s *CartService) RemoveLine(cartID, productID string) (domain.Cart, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return domain.Cart{}, err
	}
	defer func() { _ = tx.Rollback() }()

	carts := s.Carts.WithTx(tx)
	inv := s.Inv.WithTx(tx)

	cart, err := carts.Get(cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	line, err := carts.Line(cartID, productID)
	if err != nil {
		return domain.Cart{}, err
	}

	if err := inv.Release(productID, line.Qty); err != nil {
		return domain.Cart{}, err
	}
	if err := carts.DeleteLine(cartID, productID); err != nil {
		return domain.Cart{}, err
	}
	if err := carts.SetTotal(cartID, cart.TotalPrice.Sub(line.Subtotal())); err != nil {
		return domain.Cart{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Cart{}, err
	}
	return s.projection(cartID)
}

// GetCart resolves a cart by its (customer, id) pair and loads its lines.
func (s *CartService) GetCart(customerID, cartID string) (domain.Cart, error) {
	cart, err := s.Carts.GetByOwner(customerID, cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	cart.Lines, err = s.Carts.Lines(cart.ID)
	if err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// ListCarts returns every cart with its lines (admin projection).
func (s *CartService) ListCarts() ([]domain.Cart, error) {
	carts, err := s.Carts.ListAll()
	if err != nil {
		return nil, err
	}
	for i := range carts {
		carts[i].Lines, err = s.Carts.Lines(carts[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return carts, nil
}

// RepriceProduct refreshes the price snapshot of every cart line referencing
// the product. Quantities stay as they are, so no inventory moves.
func (s *CartService) RepriceProduct(productID string) error {
	lines, err := s.Carts.LinesByProduct(productID)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := s.UpdateLineQuantity(l.CartID, l.ProductID, l.Qty); err != nil {
			return fmt.Errorf("reprice cart %s: %w", l.CartID, err)
		}
	}
	return nil
}

// VerifyTotal recomputes the total from the lines and compares it to the
// stored one. Used by tests to check the materialized total stays honest.
func (s *CartService) VerifyTotal(cartID string) error {
	cart, err := s.Carts.Get(cartID)
	if err != nil {
		return err
	}
	want, err := s.Carts.RecomputeTotal(cartID)
	if err != nil {
		return err
	}
	if !cart.TotalPrice.Equal(want) {
		return fmt.Errorf("cart %s total drifted: stored %s, recomputed %s", cartID, cart.TotalPrice, want)
	}
	return nil
}

func (s *CartService) projection(cartID string) (domain.Cart, error) {
	cart, err := s.Carts.Get(cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	cart.Lines, err = s.Carts.Lines(cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}
