package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
	"storefront/internal/repos"
)

// CustomerService registers customers. The cart is created together with the
// customer and lives as long as the account does.
type CustomerService struct {
	db        *sqlx.DB
	Customers *repos.CustomerRepo
	Carts     *repos.CartRepo
}

func NewCustomerService(db *sqlx.DB, customers *repos.CustomerRepo, carts *repos.CartRepo) *CustomerService {
	return &CustomerService{db: db, Customers: customers, Carts: carts}
}

type Registration struct {
	Email    string
	Name     string
	Password string
}

// Register creates the customer and their cart in one transaction and returns
// both ids.
func (s *CustomerService) Register(reg Registration) (customerID, cartID string, err error) {
	if reg.Email == "" || reg.Name == "" {
		return "", "", errors.New("missing email or name")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), 12)
	if err != nil {
		return "", "", err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return "", "", err
	}
	defer func() { _ = tx.Rollback() }()

	customer := domain.Customer{
		ID:    uuid.NewString(),
		Email: reg.Email,
		Name:  reg.Name,
		Hash:  string(hash),
	}
	if err := s.Customers.WithTx(tx).Insert(customer); err != nil {
		return "", "", err
	}

	cartID = uuid.NewString()
	if err := s.Carts.WithTx(tx).Create(cartID, customer.ID); err != nil {
		return "", "", err
	}

	if err := tx.Commit(); err != nil {
		return "", "", err
	}
	return customer.ID, cartID, nil
}

func (s *CustomerService) Get(id string) (domain.Customer, error) {
	return s.Customers.Get(id)
}
