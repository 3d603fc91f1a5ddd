package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type Product struct {
	ID              string          `db:"id"`
	CategoryID      string          `db:"category_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	ListPrice       decimal.Decimal `db:"list_price"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
	AvailableQty    int             `db:"available_qty"`
	Active          bool            `db:"active"`
	CreatedAt       string          `db:"created_at"`
	UpdatedAt       string          `db:"updated_at"`
}

var hundred = decimal.NewFromInt(100)

// EffectivePrice is the list price after the discount percentage is applied.
func (p Product) EffectivePrice() decimal.Decimal {
	return p.ListPrice.Sub(p.ListPrice.Mul(p.DiscountPercent).Div(hundred))
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}

type Cart struct {
	ID         string          `db:"id"`
	CustomerID string          `db:"customer_id"`
	TotalPrice decimal.Decimal `db:"total_price"`
	UpdatedAt  string          `db:"updated_at"`

	Lines []CartLine `db:"-"`
}

type CartLine struct {
	ID        string          `db:"id"`
	CartID    string          `db:"cart_id"`
	ProductID string          `db:"product_id"`
	Qty       int             `db:"qty"`
	UnitPrice decimal.Decimal `db:"unit_price"` // effective price frozen at add/reprice time
	Discount  decimal.Decimal `db:"discount"`
	CreatedAt string          `db:"created_at"`
	UpdatedAt string          `db:"updated_at"`
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

const OrderStatusAccepted = "Accepted"

type Order struct {
	ID          string          `db:"id"`
	CustomerID  string          `db:"customer_id"`
	PlacedDate  string          `db:"placed_date"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      string          `db:"status"`
	CreatedAt   string          `db:"created_at"`

	Lines   []OrderLine `db:"-"`
	Payment *Payment    `db:"-"`
}

type OrderLine struct {
	ID        string          `db:"id"`
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	Qty       int             `db:"qty"`
	Price     decimal.Decimal `db:"price"` // frozen copy of the cart line's unit price
	Discount  decimal.Decimal `db:"discount"`
}

type Payment struct {
	ID      string `db:"id"`
	OrderID string `db:"order_id"`
	Method  string `db:"method"`
}

type Customer struct {
	ID        string `db:"id"`
	Email     string `db:"email"`
	Name      string `db:"name"`
	Hash      string `db:"password_hash"`
	CreatedAt string `db:"created_at"`
}
