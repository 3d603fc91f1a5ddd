package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	"storefront/internal/repos"
)

// CheckoutService converts one cart into one order, payment, and order-line
// set. The whole conversion is a single transaction: a failure at any step
// leaves no order, no payment, no lines, and an untouched cart.
type CheckoutService struct {
	db     *sqlx.DB
	Carts  *repos.CartRepo
	Orders *repos.OrderRepo
}

func NewCheckoutService(db *sqlx.DB, carts *repos.CartRepo, orders *repos.OrderRepo) *CheckoutService {
	return &CheckoutService{db: db, Carts: carts, Orders: orders}
}

// PlaceOrder checks out the cart identified by (customerID, cartID).
//
// Stock was already reserved when each line was added, so checkout never
// touches the inventory ledger: consuming the lines without a release turns
// the reservation into a permanent decrement.
func (s *CheckoutService) PlaceOrder(customerID, cartID, paymentMethod string) (domain.Order, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return domain.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	carts := s.Carts.WithTx(tx)
	orders := s.Orders.WithTx(tx)

	cart, err := carts.GetByOwner(customerID, cartID)
	if err != nil {
		return domain.Order{}, err
	}

	lines, err := carts.Lines(cartID)
	if err != nil {
		return domain.Order{}, err
	}
	// Checked before any write so a failed checkout leaves no partial order.
	if len(lines) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	order := domain.Order{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		PlacedDate:  time.Now().UTC().Format("2006-01-02"),
		TotalAmount: cart.TotalPrice,
		Status:      domain.OrderStatusAccepted,
	}
	if err := orders.Create(order); err != nil {
		return domain.Order{}, err
	}

	payment, err := orders.InsertPayment(order.ID, paymentMethod)
	if err != nil {
		return domain.Order{}, err
	}

	orderLines := make([]domain.OrderLine, len(lines))
	for i, l := range lines {
		orderLines[i] = domain.OrderLine{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: l.ProductID,
			Qty:       l.Qty,
			Price:     l.UnitPrice,
			Discount:  l.Discount,
		}
	}
	if err := orders.InsertLines(order.ID, orderLines); err != nil {
		return domain.Order{}, err
	}

	// Snapshot the product ids first, then delete by id: the removal loop
	// must not iterate the collection it is mutating.
	productIDs := make([]string, len(lines))
	for i, l := range lines {
		productIDs[i] = l.ProductID
	}
	for _, pid := range productIDs {
		if err := carts.DeleteLine(cartID, pid); err != nil {
			return domain.Order{}, err
		}
	}
	if err := carts.SetTotal(cartID, decimal.Zero); err != nil {
		return domain.Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, err
	}

	order.Lines = orderLines
	order.Payment = &payment
	return order, nil
}
