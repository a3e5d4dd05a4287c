package postgres

import (
	"context"
	"fmt"

	"github.com/frontandrew/mechanicshop/internal/pkg/database"
	"github.com/frontandrew/mechanicshop/internal/repository"
	"github.com/jackc/pgx/v5"
)

// Pool - то, что нужно Store от *pgxpool.Pool
type Pool interface {
	database.Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store раздает репозитории поверх пула или открытой транзакции
type Store struct {
	pool  Pool
	keys  keyAllocator
	repos *repository.Repositories
}

// NewStore создает Store; idStrategy - config.IDStrategyMax или config.IDStrategySequence
func NewStore(pool Pool, idStrategy string) *Store {
	keys := newKeyAllocator(idStrategy)
	return &Store{
		pool:  pool,
		keys:  keys,
		repos: newRepositories(database.NewGateway(pool), keys),
	}
}

func newRepositories(gw *database.Gateway, keys keyAllocator) *repository.Repositories {
	return &repository.Repositories{
		Customers:       NewCustomerRepository(gw, keys),
		Mechanics:       NewMechanicRepository(gw, keys),
		Cars:            NewCarRepository(gw),
		Ownerships:      NewOwnershipRepository(gw, keys),
		ServiceRequests: NewServiceRequestRepository(gw, keys),
		ClosedRequests:  NewClosedRequestRepository(gw),
		Reports:         NewReportRepository(gw),
	}
}

func (s *Store) Repositories() *repository.Repositories {
	return s.repos
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *repository.Repositories) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, newRepositories(database.NewGateway(tx), s.keys)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
