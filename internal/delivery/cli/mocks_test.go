package cli

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/usecase/car"
	"github.com/frontandrew/mechanicshop/internal/usecase/customer"
	"github.com/frontandrew/mechanicshop/internal/usecase/mechanic"
	"github.com/frontandrew/mechanicshop/internal/usecase/request"
	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct{ mock.Mock }

func (m *MockCustomerService) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCustomerService) AddCustomer(ctx context.Context, req *customer.AddCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockMechanicService struct{ mock.Mock }

func (m *MockMechanicService) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockMechanicService) AddMechanic(ctx context.Context, req *mechanic.AddMechanicRequest) (*domain.Mechanic, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mechanic), args.Error(1)
}

type MockCarService struct{ mock.Mock }

func (m *MockCarService) NextOwnershipID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCarService) NewVIN(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCarService) AddCar(ctx context.Context, req *car.AddCarRequest) (*car.AddCarResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*car.AddCarResult), args.Error(1)
}

type MockRequestService struct{ mock.Mock }

func (m *MockRequestService) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRequestService) Open(ctx context.Context, req *request.OpenRequest) (*domain.ServiceRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRequest), args.Error(1)
}

func (m *MockRequestService) Close(ctx context.Context, req *request.CloseRequest) (*domain.ClosedRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosedRequest), args.Error(1)
}

type MockReportService struct{ mock.Mock }

func (m *MockReportService) table(args mock.Arguments) (*domain.Table, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockReportService) ClosedRequestsWithBillBelow100(ctx context.Context) (*domain.Table, error) {
	return m.table(m.Called(ctx))
}

func (m *MockReportService) CustomersWithMoreThan20Cars(ctx context.Context) (*domain.Table, error) {
	return m.table(m.Called(ctx))
}

func (m *MockReportService) CarsBefore1995With50000Miles(ctx context.Context) (*domain.Table, error) {
	return m.table(m.Called(ctx))
}

func (m *MockReportService) TopCarsByServices(ctx context.Context, k int) (*domain.Table, error) {
	return m.table(m.Called(ctx, k))
}

func (m *MockReportService) CustomersByTotalBill(ctx context.Context) (*domain.Table, error) {
	return m.table(m.Called(ctx))
}
