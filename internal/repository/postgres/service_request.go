package postgres

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/database"
	"github.com/frontandrew/mechanicshop/internal/repository"
)

type serviceRequestRepository struct {
	gw   *database.Gateway
	keys keyAllocator
}

func NewServiceRequestRepository(gw *database.Gateway, keys keyAllocator) repository.ServiceRequestRepository {
	return &serviceRequestRepository{gw: gw, keys: keys}
}

func (r *serviceRequestRepository) NextID(ctx context.Context) (int, error) {
	return r.keys.Peek(ctx, r.gw, "service_request", "rid")
}

func (r *serviceRequestRepository) Create(ctx context.Context, request *domain.ServiceRequest) error {
	rid, err := r.keys.Next(ctx, r.gw, "service_request", "rid")
	if err != nil {
		return err
	}

	query := `
		INSERT INTO service_request (rid, customer_id, car_vin, date, odometer, complain)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.gw.ExecuteUpdate(ctx, query,
		rid,
		request.CustomerID,
		request.CarVIN,
		request.Date,
		request.Odometer,
		request.Complaint,
	)
	if err != nil {
		return err
	}

	request.ID = rid
	return nil
}

func (r *serviceRequestRepository) Exists(ctx context.Context, rid int) (bool, error) {
	count, err := r.gw.ExecuteQueryCount(ctx, `SELECT 1 FROM service_request WHERE rid = $1`, rid)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type closedRequestRepository struct {
	gw *database.Gateway
}

func NewClosedRequestRepository(gw *database.Gateway) repository.ClosedRequestRepository {
	return &closedRequestRepository{gw: gw}
}

func (r *closedRequestRepository) Create(ctx context.Context, closed *domain.ClosedRequest) error {
	query := `
		INSERT INTO closed_request (wid, rid, mechanic_id, date, comment, bill)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	// Номер работы совпадает с номером заявки
	closed.WID = closed.RID

	_, err := r.gw.ExecuteUpdate(ctx, query,
		closed.WID,
		closed.RID,
		closed.MechanicID,
		closed.Date,
		closed.Comment,
		closed.Bill,
	)
	return err
}

func (r *closedRequestRepository) ExistsForRequest(ctx context.Context, rid int) (bool, error) {
	count, err := r.gw.ExecuteQueryCount(ctx, `SELECT 1 FROM closed_request WHERE wid = $1`, rid)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
