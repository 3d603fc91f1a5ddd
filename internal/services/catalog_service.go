package services

import (
	"errors"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repos"
)

// CatalogService manages products and categories. It owns catalog metadata
// only; available_qty belongs to the inventory ledger.
type CatalogService struct {
	Prods *repos.ProductRepo
	Cats  *repos.CategoryRepo
	Carts *CartService
}

func NewCatalogService(prods *repos.ProductRepo, cats *repos.CategoryRepo, carts *CartService) *CatalogService {
	return &CatalogService{Prods: prods, Cats: cats, Carts: carts}
}

func (s *CatalogService) AddProduct(p domain.Product) (domain.Product, error) {
	if p.Name == "" {
		return domain.Product{}, errors.New("missing product name")
	}
	if p.ListPrice.IsNegative() {
		return domain.Product{}, errors.New("negative list price")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Active = true
	if err := s.Prods.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// UpdateProduct rewrites catalog fields. A price or discount change is pushed
// into every cart holding the product so their snapshots refresh.
func (s *CatalogService) UpdateProduct(p domain.Product) (domain.Product, error) {
	old, err := s.Prods.Get(p.ID)
	if err != nil {
		return domain.Product{}, err
	}
	if err := s.Prods.Update(p); err != nil {
		return domain.Product{}, err
	}

	priceChanged := !old.ListPrice.Equal(p.ListPrice) || !old.DiscountPercent.Equal(p.DiscountPercent)
	if priceChanged && s.Carts != nil {
		if err := s.Carts.RepriceProduct(p.ID); err != nil {
			return domain.Product{}, err
		}
	}
	return s.Prods.Get(p.ID)
}

func (s *CatalogService) DeleteProduct(id string) error {
	return s.Prods.Delete(id)
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) ListProducts(categoryID string) ([]domain.Product, error) {
	if categoryID != "" {
		return s.Prods.ListByCategory(categoryID)
	}
	return s.Prods.List()
}

func (s *CatalogService) AddCategory(name string) (domain.Category, error) {
	if name == "" {
		return domain.Category{}, errors.New("missing category name")
	}
	c := domain.Category{ID: uuid.NewString(), Name: name}
	if err := s.Cats.Insert(c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) DeleteCategory(id string) error {
	return s.Cats.Delete(id)
}
