package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"storefront/internal/domain"
)

// InventoryRepo is the only component allowed to mutate products.available_qty.
// Reserve and Release are single conditional UPDATEs, so concurrent calls
// against the same product serialize in the storage engine and can never
// jointly drive the quantity negative.
type InventoryRepo struct{ q sqlx.Ext }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{q: db} }

// WithTx returns a copy bound to the given transaction.
func (r *InventoryRepo) WithTx(tx *sqlx.Tx) *InventoryRepo { return &InventoryRepo{q: tx} }

// Qty returns the current available quantity for a product.
func (r *InventoryRepo) Qty(productID string) (int, error) {
	var qty int
	err := sqlx.Get(r.q, &qty, `SELECT available_qty FROM products WHERE id = ?`, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("product %s: %w", productID, domain.ErrProductNotFound)
	}
	if err != nil {
		return 0, err
	}
	return qty, nil
}

// CheckAvailability reports whether requested units are on hand.
func (r *InventoryRepo) CheckAvailability(productID string, requested int) (bool, error) {
	qty, err := r.Qty(productID)
	if err != nil {
		return false, err
	}
	return qty >= requested, nil
}

// Reserve subtracts qty units if enough stock exists at call time.
func (r *InventoryRepo) Reserve(productID string, qty int) error {
	res, err := r.q.Exec(`
		UPDATE products
		SET available_qty = available_qty - ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND available_qty >= ?
	`, qty, productID, qty)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		// distinguish a missing product from a short one
		if _, qerr := r.Qty(productID); qerr != nil {
			return qerr
		}
		return fmt.Errorf("product %s: %w", productID, domain.ErrInsufficientStock)
	}
	return nil
}

// Release restores previously reserved units, e.g. when a line leaves a cart
// without being checked out. No upper bound applies.
func (r *InventoryRepo) Release(productID string, qty int) error {
	res, err := r.q.Exec(`
		UPDATE products
		SET available_qty = available_qty + ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, qty, productID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("product %s: %w", productID, domain.ErrProductNotFound)
	}
	return nil
}
