package request

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/repository"
	"github.com/frontandrew/mechanicshop/internal/usecase/guard"
)

// OpenRequest - запрос на создание заявки на обслуживание
type OpenRequest struct {
	CustomerID int
	CarVIN     string
	Date       time.Time
	Odometer   int
	Complaint  string
}

// CloseRequest - запрос на закрытие заявки
type CloseRequest struct {
	RID        int
	MechanicID int
	Date       time.Time
	Comment    string
	Bill       int
}

// Service содержит бизнес-логику работы с заявками
type Service struct {
	store  repository.Store
	logger logger.Logger
}

// NewService создает новый экземпляр RequestService
func NewService(store repository.Store, logger logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// NextID возвращает вероятный rid следующей заявки
func (s *Service) NextID(ctx context.Context) (int, error) {
	return s.store.Repositories().ServiceRequests.NextID(ctx)
}

// Open создает заявку, если существуют и клиент, и автомобиль
func (s *Service) Open(ctx context.Context, req *OpenRequest) (*domain.ServiceRequest, error) {
	request := &domain.ServiceRequest{
		CustomerID: req.CustomerID,
		CarVIN:     req.CarVIN,
		Date:       req.Date,
		Odometer:   req.Odometer,
		Complaint:  req.Complaint,
	}

	err := s.store.WithinTransaction(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		err := guard.Run(ctx,
			guard.Exists("customer_id", func(ctx context.Context) (bool, error) {
				return repos.Customers.Exists(ctx, req.CustomerID)
			}, domain.ErrCustomerNotFound),
			guard.Exists("car_vin", func(ctx context.Context) (bool, error) {
				return repos.Cars.ExistsByVIN(ctx, req.CarVIN)
			}, domain.ErrCarNotFound),
		)
		if err != nil {
			return err
		}

		if err := repos.ServiceRequests.Create(ctx, request); err != nil {
			return fmt.Errorf("failed to create service request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Service request opened", map[string]interface{}{
		"rid":         request.ID,
		"customer_id": request.CustomerID,
		"car_vin":     request.CarVIN,
	})

	return request, nil
}

// Close закрывает заявку. Проверки идут в порядке: заявка существует,
// еще не закрыта, механик существует.
func (s *Service) Close(ctx context.Context, req *CloseRequest) (*domain.ClosedRequest, error) {
	closed := &domain.ClosedRequest{
		RID:        req.RID,
		MechanicID: req.MechanicID,
		Date:       req.Date,
		Comment:    req.Comment,
		Bill:       req.Bill,
	}

	err := s.store.WithinTransaction(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		err := guard.Run(ctx,
			guard.Exists("rid", func(ctx context.Context) (bool, error) {
				return repos.ServiceRequests.Exists(ctx, req.RID)
			}, domain.ErrServiceRequestNotFound),
			guard.Absent("closed_request", func(ctx context.Context) (bool, error) {
				return repos.ClosedRequests.ExistsForRequest(ctx, req.RID)
			}, domain.ErrServiceRequestClosed),
			guard.Exists("mechanic_id", func(ctx context.Context) (bool, error) {
				return repos.Mechanics.Exists(ctx, req.MechanicID)
			}, domain.ErrMechanicNotFound),
		)
		if err != nil {
			return err
		}

		if err := repos.ClosedRequests.Create(ctx, closed); err != nil {
			return fmt.Errorf("failed to close service request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Service request closed", map[string]interface{}{
		"rid":         closed.RID,
		"mechanic_id": closed.MechanicID,
		"bill":        closed.Bill,
	})

	return closed, nil
}
