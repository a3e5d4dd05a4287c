package report

import (
	"context"
	"fmt"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/repository"
)

// Пороги фиксированных отчетов
const (
	BillThreshold     = 100
	CarsThreshold     = 20
	YearThreshold     = 1995
	OdometerThreshold = 50000
)

// Service выполняет отчетные запросы. Отчеты только читают данные,
// поэтому транзакции не нужны.
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

// ClosedRequestsWithBillBelow100 - закрытые заявки со счетом < 100
func (s *Service) ClosedRequestsWithBillBelow100(ctx context.Context) (*domain.Table, error) {
	return s.run("bill_below", func(r repository.ReportRepository) (*domain.Table, error) {
		return r.ClosedRequestsWithBillBelow(ctx, BillThreshold)
	})
}

// CustomersWithMoreThan20Cars - клиенты с более чем 20 автомобилями,
// по возрастанию количества
func (s *Service) CustomersWithMoreThan20Cars(ctx context.Context) (*domain.Table, error) {
	return s.run("customers_many_cars", func(r repository.ReportRepository) (*domain.Table, error) {
		return r.CustomersWithMoreCarsThan(ctx, CarsThreshold)
	})
}

// CarsBefore1995With50000Miles - автомобили до 1995 года с пробегом в заявке от 50000
func (s *Service) CarsBefore1995With50000Miles(ctx context.Context) (*domain.Table, error) {
	return s.run("old_cars_high_mileage", func(r repository.ReportRepository) (*domain.Table, error) {
		return r.CarsBeforeYearWithOdometer(ctx, YearThreshold, OdometerThreshold)
	})
}

// TopCarsByServices - k автомобилей с наибольшим числом заявок
func (s *Service) TopCarsByServices(ctx context.Context, k int) (*domain.Table, error) {
	if k < 1 {
		return nil, domain.ErrInvalidLimit
	}
	return s.run("top_cars", func(r repository.ReportRepository) (*domain.Table, error) {
		return r.TopCarsByServiceCount(ctx, k)
	})
}

// CustomersByTotalBill - клиенты по убыванию суммы счетов
func (s *Service) CustomersByTotalBill(ctx context.Context) (*domain.Table, error) {
	return s.run("customers_total_bill", func(r repository.ReportRepository) (*domain.Table, error) {
		return r.CustomersByTotalBill(ctx)
	})
}

func (s *Service) run(name string, query func(r repository.ReportRepository) (*domain.Table, error)) (*domain.Table, error) {
	table, err := query(s.store.Repositories().Reports)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", name, err)
	}

	s.logger.Debug("Report executed", map[string]interface{}{
		"report": name,
		"rows":   table.Len(),
	})

	return table, nil
}
