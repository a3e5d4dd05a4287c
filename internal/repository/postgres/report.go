package postgres

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/database"
	"github.com/frontandrew/mechanicshop/internal/repository"
)

type reportRepository struct {
	gw *database.Gateway
}

func NewReportRepository(gw *database.Gateway) repository.ReportRepository {
	return &reportRepository{gw: gw}
}

func (r *reportRepository) ClosedRequestsWithBillBelow(ctx context.Context, bill int) (*domain.Table, error) {
	query := `
		SELECT wid, rid, mechanic_id, date, comment, bill
		FROM closed_request
		WHERE bill < $1
	`
	return r.gw.ExecuteQueryRows(ctx, query, bill)
}

// CustomersWithMoreCarsThan сортирует по возрастанию количества - так исторически
// работает отчет "ListCustomersWithMoreThan20Cars"
func (r *reportRepository) CustomersWithMoreCarsThan(ctx context.Context, cars int) (*domain.Table, error) {
	query := `
		SELECT c.id, c.fname, c.lname, c.phone, c.address, b.customer_id, b.count
		FROM customer c
		INNER JOIN (
			SELECT customer_id, COUNT(customer_id) AS count
			FROM owns
			GROUP BY customer_id
			HAVING COUNT(customer_id) > $1
		) b ON c.id = b.customer_id
		ORDER BY b.count
	`
	return r.gw.ExecuteQueryRows(ctx, query, cars)
}

func (r *reportRepository) CarsBeforeYearWithOdometer(ctx context.Context, year, odometer int) (*domain.Table, error) {
	query := `
		SELECT car.vin, car.make, car.model, car.year,
		       sr.rid, sr.customer_id, sr.car_vin, sr.date, sr.odometer, sr.complain
		FROM car
		INNER JOIN service_request sr ON car.vin = sr.car_vin
		WHERE car.year < $1 AND sr.odometer >= $2
	`
	return r.gw.ExecuteQueryRows(ctx, query, year, odometer)
}

func (r *reportRepository) TopCarsByServiceCount(ctx context.Context, k int) (*domain.Table, error) {
	query := `
		SELECT car.make, car.model, COUNT(sr.rid) AS count
		FROM car
		INNER JOIN service_request sr ON car.vin = sr.car_vin
		GROUP BY car.vin
		ORDER BY count DESC
		LIMIT $1
	`
	return r.gw.ExecuteQueryRows(ctx, query, k)
}

func (r *reportRepository) CustomersByTotalBill(ctx context.Context) (*domain.Table, error) {
	query := `
		SELECT c.id, c.fname, c.lname, SUM(cr.bill) AS total
		FROM customer c
		INNER JOIN service_request sr ON c.id = sr.customer_id
		INNER JOIN closed_request cr ON sr.rid = cr.rid
		GROUP BY c.id
		ORDER BY total DESC
	`
	return r.gw.ExecuteQueryRows(ctx, query)
}
