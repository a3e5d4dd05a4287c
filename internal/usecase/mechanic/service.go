package mechanic

import (
	"context"
	"fmt"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/repository"
)

// AddMechanicRequest - запрос на добавление механика
type AddMechanicRequest struct {
	FirstName  string
	LastName   string
	Experience int
}

// Service содержит бизнес-логику работы с механиками
type Service struct {
	store  repository.Store
	logger logger.Logger
}

func NewService(store repository.Store, logger logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (s *Service) NextID(ctx context.Context) (int, error) {
	return s.store.Repositories().Mechanics.NextID(ctx)
}

func (s *Service) AddMechanic(ctx context.Context, req *AddMechanicRequest) (*domain.Mechanic, error) {
	mechanic := &domain.Mechanic{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Experience: req.Experience,
	}

	err := s.store.WithinTransaction(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		return repos.Mechanics.Create(ctx, mechanic)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mechanic: %w", err)
	}

	s.logger.Info("Mechanic created", map[string]interface{}{
		"mechanic_id": mechanic.ID,
	})

	return mechanic, nil
}
