package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	"storefront/internal/repos"
)

// OrderService is the order ledger: append-only once an order exists, except
// for the status label.
type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// CreateOrder writes a new header with the accepted status and today's date.
func (s *OrderService) CreateOrder(customerID string, totalAmount decimal.Decimal) (string, error) {
	o := domain.Order{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		PlacedDate:  time.Now().UTC().Format("2006-01-02"),
		TotalAmount: totalAmount,
		Status:      domain.OrderStatusAccepted,
	}
	if err := s.Orders.Create(o); err != nil {
		return "", err
	}
	return o.ID, nil
}

// AttachPayment creates the order's one payment record.
func (s *OrderService) AttachPayment(orderID, method string) (domain.Payment, error) {
	return s.Orders.InsertPayment(orderID, method)
}

// AppendLines writes the order's lines in bulk, once.
func (s *OrderService) AppendLines(orderID string, lines []domain.OrderLine) error {
	return s.Orders.InsertLines(orderID, lines)
}

// GetOrder returns the full order graph for a (customer, order) pair.
func (s *OrderService) GetOrder(customerID, orderID string) (domain.Order, error) {
	o, err := s.Orders.GetByOwner(customerID, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if o.Lines, err = s.Orders.Lines(o.ID); err != nil {
		return domain.Order{}, err
	}
	if o.Payment, err = s.Orders.Payment(o.ID); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// ListOrdersByCustomer returns the customer's order headers, newest first.
func (s *OrderService) ListOrdersByCustomer(customerID string) ([]domain.Order, error) {
	orders, err := s.Orders.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrNoOrdersFound
	}
	return orders, nil
}

// ListOrders is the admin projection across all customers.
func (s *OrderService) ListOrders(limit int) ([]domain.Order, error) {
	return s.Orders.ListLatest(limit)
}

// UpdateStatus relabels an order. The rest of the order stays immutable.
func (s *OrderService) UpdateStatus(customerID, orderID, status string) error {
	return s.Orders.UpdateStatus(customerID, orderID, status)
}
