package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"storefront/internal/domain"
)

type ProductRepo struct{ q sqlx.Ext }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{q: db} }

func (r *ProductRepo) WithTx(tx *sqlx.Tx) *ProductRepo { return &ProductRepo{q: tx} }

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := sqlx.Get(r.q, &p, `SELECT * FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := sqlx.Select(r.q, &out, `SELECT * FROM products WHERE active = 1 ORDER BY name`)
	return out, err
}

func (r *ProductRepo) ListByCategory(categoryID string) ([]domain.Product, error) {
	var out []domain.Product
	err := sqlx.Select(r.q, &out, `
		SELECT * FROM products WHERE category_id = ? AND active = 1 ORDER BY name
	`, categoryID)
	return out, err
}

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.q.Exec(`
		INSERT INTO products(id, category_id, name, description, list_price, discount_percent, available_qty, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.CategoryID, p.Name, p.Description, p.ListPrice, p.DiscountPercent, p.AvailableQty, p.Active,
		time.Now().UTC().Format(time.RFC3339))
	return err
}

// Update rewrites the catalog fields. available_qty is deliberately not
// touched here; stock moves only through InventoryRepo.
func (r *ProductRepo) Update(p domain.Product) error {
	res, err := r.q.Exec(`
		UPDATE products
		SET category_id = ?, name = ?, description = ?, list_price = ?, discount_percent = ?, active = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.CategoryID, p.Name, p.Description, p.ListPrice, p.DiscountPercent, p.Active, p.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("product %s: %w", p.ID, domain.ErrProductNotFound)
	}
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	res, err := r.q.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	return nil
}
