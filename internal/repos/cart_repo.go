package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

type CartRepo struct{ q sqlx.Ext }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{q: db} }

func (r *CartRepo) WithTx(tx *sqlx.Tx) *CartRepo { return &CartRepo{q: tx} }

func (r *CartRepo) Create(cartID, customerID string) error {
	_, err := r.q.Exec(`INSERT INTO carts(id, customer_id, total_price, updated_at) VALUES (?, ?, 0, ?)`,
		cartID, customerID, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (r *CartRepo) Get(cartID string) (domain.Cart, error) {
	var c domain.Cart
	err := sqlx.Get(r.q, &c, `SELECT * FROM carts WHERE id = ?`, cartID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, fmt.Errorf("cart %s: %w", cartID, domain.ErrCartNotFound)
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return c, nil
}

// GetByOwner resolves a cart by its (customer, id) pair. Ownership is part of
// the lookup key, not a separate authorization check.
func (r *CartRepo) GetByOwner(customerID, cartID string) (domain.Cart, error) {
	var c domain.Cart
	err := sqlx.Get(r.q, &c, `SELECT * FROM carts WHERE id = ? AND customer_id = ?`, cartID, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, fmt.Errorf("cart %s for customer %s: %w", cartID, customerID, domain.ErrCartNotFound)
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return c, nil
}

func (r *CartRepo) ListAll() ([]domain.Cart, error) {
	var out []domain.Cart
	err := sqlx.Select(r.q, &out, `SELECT * FROM carts ORDER BY updated_at DESC`)
	return out, err
}

// Lines returns the cart's lines in insertion order.
func (r *CartRepo) Lines(cartID string) ([]domain.CartLine, error) {
	var out []domain.CartLine
	err := sqlx.Select(r.q, &out, `
		SELECT * FROM cart_lines WHERE cart_id = ? ORDER BY created_at, id
	`, cartID)
	return out, err
}

func (r *CartRepo) Line(cartID, productID string) (domain.CartLine, error) {
	var l domain.CartLine
	err := sqlx.Get(r.q, &l, `SELECT * FROM cart_lines WHERE cart_id = ? AND product_id = ?`, cartID, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CartLine{}, fmt.Errorf("product %s in cart %s: %w", productID, cartID, domain.ErrLineNotFound)
	}
	if err != nil {
		return domain.CartLine{}, err
	}
	return l, nil
}

// LinesByProduct returns every cart line referencing a product, across all
// carts. Used by repricing after a catalog price change.
func (r *CartRepo) LinesByProduct(productID string) ([]domain.CartLine, error) {
	var out []domain.CartLine
	err := sqlx.Select(r.q, &out, `SELECT * FROM cart_lines WHERE product_id = ? ORDER BY cart_id`, productID)
	return out, err
}

func (r *CartRepo) InsertLine(l domain.CartLine) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.q.Exec(`
		INSERT INTO cart_lines(id, cart_id, product_id, qty, unit_price, discount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, l.ID, l.CartID, l.ProductID, l.Qty, l.UnitPrice, l.Discount, now)
	return err
}

func (r *CartRepo) UpdateLine(lineID string, qty int, unitPrice, discount decimal.Decimal) error {
	_, err := r.q.Exec(`
		UPDATE cart_lines
		SET qty = ?, unit_price = ?, discount = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, qty, unitPrice, discount, lineID)
	return err
}

// DeleteLine removes one (cart, product) line. The caller decides whether the
// removal releases stock (user removal) or consumes it (checkout).
func (r *CartRepo) DeleteLine(cartID, productID string) error {
	res, err := r.q.Exec(`DELETE FROM cart_lines WHERE cart_id = ? AND product_id = ?`, cartID, productID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("product %s in cart %s: %w", productID, cartID, domain.ErrLineNotFound)
	}
	return nil
}

func (r *CartRepo) SetTotal(cartID string, total decimal.Decimal) error {
	_, err := r.q.Exec(`UPDATE carts SET total_price = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		total, cartID)
	return err
}

// RecomputeTotal sums qty x unit_price over the cart's current lines. It is
// the reconciliation source of truth against the denormalized total_price.
func (r *CartRepo) RecomputeTotal(cartID string) (decimal.Decimal, error) {
	lines, err := r.Lines(cartID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total, nil
}
