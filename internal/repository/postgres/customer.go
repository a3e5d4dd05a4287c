package postgres

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/database"
	"github.com/frontandrew/mechanicshop/internal/repository"
)

type customerRepository struct {
	gw   *database.Gateway
	keys keyAllocator
}

func NewCustomerRepository(gw *database.Gateway, keys keyAllocator) repository.CustomerRepository {
	return &customerRepository{gw: gw, keys: keys}
}

func (r *customerRepository) NextID(ctx context.Context) (int, error) {
	return r.keys.Peek(ctx, r.gw, "customer", "id")
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	id, err := r.keys.Next(ctx, r.gw, "customer", "id")
	if err != nil {
		return err
	}

	query := `
		INSERT INTO customer (id, fname, lname, phone, address)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.gw.ExecuteUpdate(ctx, query,
		id,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.Address,
	)
	if err != nil {
		return err
	}

	customer.ID = id
	return nil
}

func (r *customerRepository) Exists(ctx context.Context, id int) (bool, error) {
	count, err := r.gw.ExecuteQueryCount(ctx, `SELECT 1 FROM customer WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
