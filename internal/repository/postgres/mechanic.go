package postgres

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/database"
	"github.com/frontandrew/mechanicshop/internal/repository"
)

type mechanicRepository struct {
	gw   *database.Gateway
	keys keyAllocator
}

func NewMechanicRepository(gw *database.Gateway, keys keyAllocator) repository.MechanicRepository {
	return &mechanicRepository{gw: gw, keys: keys}
}

func (r *mechanicRepository) NextID(ctx context.Context) (int, error) {
	return r.keys.Peek(ctx, r.gw, "mechanic", "id")
}

func (r *mechanicRepository) Create(ctx context.Context, mechanic *domain.Mechanic) error {
	id, err := r.keys.Next(ctx, r.gw, "mechanic", "id")
	if err != nil {
		return err
	}

	query := `
		INSERT INTO mechanic (id, fname, lname, experience)
		VALUES ($1, $2, $3, $4)
	`

	_, err = r.gw.ExecuteUpdate(ctx, query, id, mechanic.FirstName, mechanic.LastName, mechanic.Experience)
	if err != nil {
		return err
	}

	mechanic.ID = id
	return nil
}

func (r *mechanicRepository) Exists(ctx context.Context, id int) (bool, error) {
	count, err := r.gw.ExecuteQueryCount(ctx, `SELECT 1 FROM mechanic WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
