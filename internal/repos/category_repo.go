package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"storefront/internal/domain"
)

type CategoryRepo struct{ q sqlx.Ext }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{q: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := sqlx.Select(r.q, &out, `SELECT * FROM categories ORDER BY name`)
	return out, err
}

func (r *CategoryRepo) Insert(c domain.Category) error {
	_, err := r.q.Exec(`INSERT INTO categories(id, name) VALUES (?, ?)`, c.ID, c.Name)
	return err
}

// Delete removes an empty category. Products keep their category via the
// RESTRICT foreign key, so deleting a non-empty one fails at the storage layer.
func (r *CategoryRepo) Delete(id string) error {
	res, err := r.q.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("category %s not found", id)
	}
	return nil
}
