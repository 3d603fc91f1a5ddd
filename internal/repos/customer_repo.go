package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"storefront/internal/domain"
)

type CustomerRepo struct{ q sqlx.Ext }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{q: db} }

func (r *CustomerRepo) WithTx(tx *sqlx.Tx) *CustomerRepo { return &CustomerRepo{q: tx} }

func (r *CustomerRepo) Insert(c domain.Customer) error {
	_, err := r.q.Exec(`
		INSERT INTO customers(id, email, name, password_hash, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, c.ID, c.Email, c.Name, c.Hash)
	return err
}

func (r *CustomerRepo) Get(id string) (domain.Customer, error) {
	var c domain.Customer
	err := sqlx.Get(r.q, &c, `SELECT * FROM customers WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, fmt.Errorf("customer %s not found", id)
	}
	return c, err
}

func (r *CustomerRepo) GetByEmail(email string) (domain.Customer, error) {
	var c domain.Customer
	err := sqlx.Get(r.q, &c, `SELECT * FROM customers WHERE LOWER(email) = LOWER(?)`, email)
	return c, err
}
