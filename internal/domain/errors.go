package domain

import "errors"

// Domain error kinds. All are caller-recoverable; handlers map each kind to a
// transport status. Services wrap them with %w so errors.Is survives the stack.
var (
	ErrCartNotFound           = errors.New("cart not found")
	ErrLineNotFound           = errors.New("cart line not found")
	ErrDuplicateLine          = errors.New("product already in the cart")
	ErrProductNotFound        = errors.New("product not found")
	ErrProductUnavailable     = errors.New("product is out of stock")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrOrderNotFound          = errors.New("order not found")
	ErrNoOrdersFound          = errors.New("no orders found")
	ErrPaymentAlreadyAttached = errors.New("order already has a payment")
	ErrEmptyLineSet           = errors.New("order line set is empty")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
)
