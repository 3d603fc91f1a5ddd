package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"storefront/internal/domain"
)

type OrderRepo struct{ q sqlx.Ext }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{q: db} }

func (r *OrderRepo) WithTx(tx *sqlx.Tx) *OrderRepo { return &OrderRepo{q: tx} }

// Create inserts a new order header.
func (r *OrderRepo) Create(o domain.Order) error {
	_, err := r.q.Exec(`
		INSERT INTO orders(id, customer_id, placed_date, total_amount, status, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.CustomerID, o.PlacedDate, o.TotalAmount, o.Status)
	return err
}

// InsertLines appends the order's lines in one batch, write-once.
func (r *OrderRepo) InsertLines(orderID string, lines []domain.OrderLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrEmptyLineSet)
	}
	for _, l := range lines {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		_, err := r.q.Exec(`
			INSERT INTO order_lines(id, order_id, product_id, qty, price, discount)
			VALUES (?, ?, ?, ?, ?, ?)
		`, l.ID, orderID, l.ProductID, l.Qty, l.Price, l.Discount)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// InsertPayment attaches the order's one payment.
func (r *OrderRepo) InsertPayment(orderID, method string) (domain.Payment, error) {
	var n int
	if err := sqlx.Get(r.q, &n, `SELECT COUNT(*) FROM payments WHERE order_id = ?`, orderID); err != nil {
		return domain.Payment{}, err
	}
	if n > 0 {
		return domain.Payment{}, fmt.Errorf("order %s: %w", orderID, domain.ErrPaymentAlreadyAttached)
	}

	p := domain.Payment{ID: uuid.NewString(), OrderID: orderID, Method: method}
	if _, err := r.q.Exec(`INSERT INTO payments(id, order_id, method) VALUES (?, ?, ?)`,
		p.ID, p.OrderID, p.Method); err != nil {
		return domain.Payment{}, err
	}
	return p, nil
}

func (r *OrderRepo) GetByOwner(customerID, orderID string) (domain.Order, error) {
	var o domain.Order
	err := sqlx.Get(r.q, &o, `SELECT * FROM orders WHERE id = ? AND customer_id = ?`, orderID, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("order %s for customer %s: %w", orderID, customerID, domain.ErrOrderNotFound)
	}
	if err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *OrderRepo) Lines(orderID string) ([]domain.OrderLine, error) {
	var out []domain.OrderLine
	err := sqlx.Select(r.q, &out, `SELECT * FROM order_lines WHERE order_id = ? ORDER BY id`, orderID)
	return out, err
}

func (r *OrderRepo) Payment(orderID string) (*domain.Payment, error) {
	var p domain.Payment
	err := sqlx.Get(r.q, &p, `SELECT * FROM payments WHERE order_id = ?`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OrderRepo) ListByCustomer(customerID string) ([]domain.Order, error) {
	var out []domain.Order
	err := sqlx.Select(r.q, &out, `
		SELECT * FROM orders WHERE customer_id = ? ORDER BY datetime(created_at) DESC
	`, customerID)
	return out, err
}

func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.Order
	err := sqlx.Select(r.q, &out, `
		SELECT * FROM orders ORDER BY datetime(created_at) DESC LIMIT ?
	`, limit)
	return out, err
}

// UpdateStatus is the only permitted post-creation mutation of an order.
func (r *OrderRepo) UpdateStatus(customerID, orderID, status string) error {
	res, err := r.q.Exec(`UPDATE orders SET status = ? WHERE id = ? AND customer_id = ?`,
		status, orderID, customerID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("order %s for customer %s: %w", orderID, customerID, domain.ErrOrderNotFound)
	}
	return nil
}
