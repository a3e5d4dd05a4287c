package cli

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/usecase/request"
)

// RequestService определяет интерфейс для сервиса заявок
type RequestService interface {
	NextID(ctx context.Context) (int, error)
	Open(ctx context.Context, req *request.OpenRequest) (*domain.ServiceRequest, error)
	Close(ctx context.Context, req *request.CloseRequest) (*domain.ClosedRequest, error)
}

// RequestHandler обрабатывает пункты меню 4 и 5
type RequestHandler struct {
	service  RequestService
	prompter *Prompter
}

func NewRequestHandler(service RequestService, prompter *Prompter) *RequestHandler {
	return &RequestHandler{service: service, prompter: prompter}
}

// InsertServiceRequest - пункт 4
func (h *RequestHandler) InsertServiceRequest(ctx context.Context, log logger.Logger) error {
	next, err := h.service.NextID(ctx)
	if err != nil {
		return err
	}
	h.prompter.Printf("\tnext rid: %d\n", next)

	answers, err := h.prompter.Form(
		"\tEnter customer_id: $",
		"\tcar_vin: $",
		"\tEnter date ie. yyyy-mm-dd: $",
		"\tEnter odometer: $",
		"\tEnter complain: $",
	)
	if err != nil {
		return err
	}

	req := request.OpenRequest{CarVIN: answers[1], Complaint: answers[4]}
	if req.CustomerID, err = parseInt("customer_id", answers[0]); err != nil {
		return err
	}
	if req.Date, err = parseDate("date", answers[2]); err != nil {
		return err
	}
	if req.Odometer, err = parseInt("odometer", answers[3]); err != nil {
		return err
	}

	sr, err := h.service.Open(ctx, &req)
	if err != nil {
		return err
	}

	if sr.ID != next {
		h.prompter.Printf("\trid: %d\n", sr.ID)
	}
	return nil
}

// CloseServiceRequest - пункт 5
func (h *RequestHandler) CloseServiceRequest(ctx context.Context, log logger.Logger) error {
	answers, err := h.prompter.Form(
		"\tEnter rid: $",
		"\tEnter mid: $",
		"\tEnter date ie. yyyy-mm-dd: $",
		"\tEnter comment: $",
		"\tEnter bill: $",
	)
	if err != nil {
		return err
	}

	req := request.CloseRequest{Comment: answers[3]}
	if req.RID, err = parseInt("rid", answers[0]); err != nil {
		return err
	}
	if req.MechanicID, err = parseInt("mid", answers[1]); err != nil {
		return err
	}
	if req.Date, err = parseDate("date", answers[2]); err != nil {
		return err
	}
	if req.Bill, err = parseInt("bill", answers[4]); err != nil {
		return err
	}

	_, err = h.service.Close(ctx, &req)
	return err
}
