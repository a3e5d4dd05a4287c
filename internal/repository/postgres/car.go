package postgres

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/database"
	"github.com/frontandrew/mechanicshop/internal/repository"
)

type carRepository struct {
	gw *database.Gateway
}

func NewCarRepository(gw *database.Gateway) repository.CarRepository {
	return &carRepository{gw: gw}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `
		INSERT INTO car (vin, make, model, year)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.gw.ExecuteUpdate(ctx, query, car.VIN, car.Make, car.Model, car.Year)
	return err
}

func (r *carRepository) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	count, err := r.gw.ExecuteQueryCount(ctx, `SELECT 1 FROM car WHERE vin = $1`, vin)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type ownershipRepository struct {
	gw   *database.Gateway
	keys keyAllocator
}

func NewOwnershipRepository(gw *database.Gateway, keys keyAllocator) repository.OwnershipRepository {
	return &ownershipRepository{gw: gw, keys: keys}
}

func (r *ownershipRepository) NextID(ctx context.Context) (int, error) {
	return r.keys.Peek(ctx, r.gw, "owns", "ownership_id")
}

func (r *ownershipRepository) Create(ctx context.Context, ownership *domain.Ownership) error {
	id, err := r.keys.Next(ctx, r.gw, "owns", "ownership_id")
	if err != nil {
		return err
	}

	query := `
		INSERT INTO owns (ownership_id, customer_id, vin)
		VALUES ($1, $2, $3)
	`

	if _, err := r.gw.ExecuteUpdate(ctx, query, id, ownership.CustomerID, ownership.VIN); err != nil {
		return err
	}

	ownership.ID = id
	return nil
}
