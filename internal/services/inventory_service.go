package services

import (
	"storefront/internal/domain"
	"storefront/internal/repos"
)

// InventoryService fronts the inventory ledger for callers outside the cart
// and checkout flow (availability checks, admin stock edits).
type InventoryService struct {
	Inv *repos.InventoryRepo
}

func NewInventoryService(inv *repos.InventoryRepo) *InventoryService {
	return &InventoryService{Inv: inv}
}

// CheckAvailability converts the ledger quantity to IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *InventoryService) CheckAvailability(productID string) (domain.Availability, error) {
	qty, err := s.Inv.Qty(productID)
	if err != nil {
		return domain.Availability{}, err
	}

	status := "OUT_OF_STOCK"
	switch {
	case qty >= 5:
		status = "IN_STOCK"
	case qty > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: qty}, nil
}

// HasStock reports whether the requested quantity is on hand right now.
func (s *InventoryService) HasStock(productID string, requested int) (bool, error) {
	if requested <= 0 {
		return false, domain.ErrInvalidQuantity
	}
	return s.Inv.CheckAvailability(productID, requested)
}

// Restock adds units back to the ledger (admin receiving stock).
func (s *InventoryService) Restock(productID string, qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	return s.Inv.Release(productID, qty)
}
