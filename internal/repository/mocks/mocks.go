// Package mocks содержит testify-моки репозиториев для тестов use case слоя
package mocks

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/repository"
	"github.com/stretchr/testify/mock"
)

// Store - in-memory граница транзакций: отдает одни и те же моки
// и считает commit/rollback
type Store struct {
	Repos     *repository.Repositories
	BeginErr  error
	Commits   int
	Rollbacks int
}

// NewStore собирает Store из моков; nil-поля остаются nil
func NewStore(repos *repository.Repositories) *Store {
	return &Store{Repos: repos}
}

func (s *Store) Repositories() *repository.Repositories {
	return s.Repos
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *repository.Repositories) error) error {
	if s.BeginErr != nil {
		return s.BeginErr
	}
	if err := fn(ctx, s.Repos); err != nil {
		s.Rollbacks++
		return err
	}
	s.Commits++
	return nil
}

type CustomerRepository struct{ mock.Mock }

func (m *CustomerRepository) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *CustomerRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MechanicRepository struct{ mock.Mock }

func (m *MechanicRepository) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MechanicRepository) Create(ctx context.Context, mechanic *domain.Mechanic) error {
	args := m.Called(ctx, mechanic)
	return args.Error(0)
}

func (m *MechanicRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type CarRepository struct{ mock.Mock }

func (m *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *CarRepository) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	args := m.Called(ctx, vin)
	return args.Bool(0), args.Error(1)
}

type OwnershipRepository struct{ mock.Mock }

func (m *OwnershipRepository) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *OwnershipRepository) Create(ctx context.Context, ownership *domain.Ownership) error {
	args := m.Called(ctx, ownership)
	return args.Error(0)
}

type ServiceRequestRepository struct{ mock.Mock }

func (m *ServiceRequestRepository) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *ServiceRequestRepository) Create(ctx context.Context, request *domain.ServiceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *ServiceRequestRepository) Exists(ctx context.Context, rid int) (bool, error) {
	args := m.Called(ctx, rid)
	return args.Bool(0), args.Error(1)
}

type ClosedRequestRepository struct{ mock.Mock }

func (m *ClosedRequestRepository) Create(ctx context.Context, closed *domain.ClosedRequest) error {
	args := m.Called(ctx, closed)
	return args.Error(0)
}

func (m *ClosedRequestRepository) ExistsForRequest(ctx context.Context, rid int) (bool, error) {
	args := m.Called(ctx, rid)
	return args.Bool(0), args.Error(1)
}

type ReportRepository struct{ mock.Mock }

func (m *ReportRepository) table(args mock.Arguments) (*domain.Table, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *ReportRepository) ClosedRequestsWithBillBelow(ctx context.Context, bill int) (*domain.Table, error) {
	return m.table(m.Called(ctx, bill))
}

func (m *ReportRepository) CustomersWithMoreCarsThan(ctx context.Context, cars int) (*domain.Table, error) {
	return m.table(m.Called(ctx, cars))
}

func (m *ReportRepository) CarsBeforeYearWithOdometer(ctx context.Context, year, odometer int) (*domain.Table, error) {
	return m.table(m.Called(ctx, year, odometer))
}

func (m *ReportRepository) TopCarsByServiceCount(ctx context.Context, k int) (*domain.Table, error) {
	return m.table(m.Called(ctx, k))
}

func (m *ReportRepository) CustomersByTotalBill(ctx context.Context) (*domain.Table, error) {
	return m.table(m.Called(ctx))
}
