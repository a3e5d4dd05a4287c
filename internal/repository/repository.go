package repository

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
)

// CustomerRepository определяет методы для работы с клиентами
type CustomerRepository interface {
	// NextID возвращает предполагаемый следующий id (без резервирования)
	NextID(ctx context.Context) (int, error)

	// Create выдает клиенту id и сохраняет его
	Create(ctx context.Context, customer *domain.Customer) error

	// Exists проверяет, есть ли клиент с таким id
	Exists(ctx context.Context, id int) (bool, error)
}

// MechanicRepository определяет методы для работы с механиками
type MechanicRepository interface {
	NextID(ctx context.Context) (int, error)
	Create(ctx context.Context, mechanic *domain.Mechanic) error
	Exists(ctx context.Context, id int) (bool, error)
}

// CarRepository определяет методы для работы с автомобилями
type CarRepository interface {
	// Create сохраняет автомобиль с уже сгенерированным VIN
	Create(ctx context.Context, car *domain.Car) error

	// ExistsByVIN проверяет, занят ли VIN
	ExistsByVIN(ctx context.Context, vin string) (bool, error)
}

// OwnershipRepository определяет методы для работы со связями клиент-автомобиль
type OwnershipRepository interface {
	NextID(ctx context.Context) (int, error)
	Create(ctx context.Context, ownership *domain.Ownership) error
}

// ServiceRequestRepository определяет методы для работы с заявками
type ServiceRequestRepository interface {
	NextID(ctx context.Context) (int, error)
	Create(ctx context.Context, request *domain.ServiceRequest) error
	Exists(ctx context.Context, rid int) (bool, error)
}

// ClosedRequestRepository определяет методы для работы с закрытыми заявками
type ClosedRequestRepository interface {
	// Create сохраняет закрытие, WID берется из RID
	Create(ctx context.Context, closed *domain.ClosedRequest) error

	// ExistsForRequest проверяет, закрыта ли уже заявка rid
	ExistsForRequest(ctx context.Context, rid int) (bool, error)
}

// ReportRepository определяет фиксированные отчетные запросы
type ReportRepository interface {
	// ClosedRequestsWithBillBelow - закрытые заявки со счетом строго меньше bill
	ClosedRequestsWithBillBelow(ctx context.Context, bill int) (*domain.Table, error)

	// CustomersWithMoreCarsThan - клиенты, владеющие более чем cars автомобилями,
	// по возрастанию количества
	CustomersWithMoreCarsThan(ctx context.Context, cars int) (*domain.Table, error)

	// CarsBeforeYearWithOdometer - автомобили старше year с заявкой, где пробег >= odometer
	CarsBeforeYearWithOdometer(ctx context.Context, year, odometer int) (*domain.Table, error)

	// TopCarsByServiceCount - k автомобилей (make, model) с наибольшим числом заявок
	TopCarsByServiceCount(ctx context.Context, k int) (*domain.Table, error)

	// CustomersByTotalBill - клиенты с суммой всех счетов, по убыванию суммы
	CustomersByTotalBill(ctx context.Context) (*domain.Table, error)
}

// Repositories - набор репозиториев, привязанных к одному соединению или транзакции
type Repositories struct {
	Customers       CustomerRepository
	Mechanics       MechanicRepository
	Cars            CarRepository
	Ownerships      OwnershipRepository
	ServiceRequests ServiceRequestRepository
	ClosedRequests  ClosedRequestRepository
	Reports         ReportRepository
}

// Store - граница транзакций
type Store interface {
	// Repositories возвращает репозитории в режиме autocommit
	Repositories() *Repositories

	// WithinTransaction выполняет fn в одной транзакции:
	// commit, если fn вернула nil, иначе rollback
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}
