package customer

import (
	"context"
	"fmt"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/repository"
)

// AddCustomerRequest - запрос на добавление клиента
type AddCustomerRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// Service содержит бизнес-логику работы с клиентами
type Service struct {
	store  repository.Store
	logger logger.Logger
}

// NewService создает новый экземпляр CustomerService
func NewService(store repository.Store, logger logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// NextID возвращает id, который вероятнее всего получит следующий клиент
func (s *Service) NextID(ctx context.Context) (int, error) {
	return s.store.Repositories().Customers.NextID(ctx)
}

// AddCustomer добавляет клиента; id выдается внутри транзакции
func (s *Service) AddCustomer(ctx context.Context, req *AddCustomerRequest) (*domain.Customer, error) {
	customer := &domain.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	err := s.store.WithinTransaction(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		return repos.Customers.Create(ctx, customer)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("Customer created", map[string]interface{}{
		"customer_id": customer.ID,
	})

	return customer, nil
}
