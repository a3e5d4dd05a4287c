package cli

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/usecase/customer"
	"github.com/frontandrew/mechanicshop/internal/usecase/mechanic"
)

// CustomerService определяет интерфейс для сервиса клиентов
type CustomerService interface {
	NextID(ctx context.Context) (int, error)
	AddCustomer(ctx context.Context, req *customer.AddCustomerRequest) (*domain.Customer, error)
}

// MechanicService определяет интерфейс для сервиса механиков
type MechanicService interface {
	NextID(ctx context.Context) (int, error)
	AddMechanic(ctx context.Context, req *mechanic.AddMechanicRequest) (*domain.Mechanic, error)
}

// CustomerHandler обрабатывает пункт меню 1
type CustomerHandler struct {
	service  CustomerService
	prompter *Prompter
}

func NewCustomerHandler(service CustomerService, prompter *Prompter) *CustomerHandler {
	return &CustomerHandler{service: service, prompter: prompter}
}

// AddCustomer - пункт 1
func (h *CustomerHandler) AddCustomer(ctx context.Context, log logger.Logger) error {
	next, err := h.service.NextID(ctx)
	if err != nil {
		return err
	}
	h.prompter.Printf("\tnext id: %d\n", next)

	answers, err := h.prompter.Form(
		"\tEnter fname: $",
		"\tEnter lname: $",
		"\tEnter phone ie. (###)###-####: $",
		"\tEnter address ie. street city: $",
	)
	if err != nil {
		return err
	}

	req := customer.AddCustomerRequest{
		FirstName: answers[0],
		LastName:  answers[1],
		Phone:     answers[2],
		Address:   answers[3],
	}

	c, err := h.service.AddCustomer(ctx, &req)
	if err != nil {
		return err
	}

	if c.ID != next {
		log.Warn("Customer id differs from preview", map[string]interface{}{"preview": next, "id": c.ID})
	}
	h.prompter.Printf("\tcustomer id: %d\n", c.ID)
	return nil
}

// MechanicHandler обрабатывает пункт меню 2
type MechanicHandler struct {
	service  MechanicService
	prompter *Prompter
}

func NewMechanicHandler(service MechanicService, prompter *Prompter) *MechanicHandler {
	return &MechanicHandler{service: service, prompter: prompter}
}

// AddMechanic - пункт 2
func (h *MechanicHandler) AddMechanic(ctx context.Context, log logger.Logger) error {
	next, err := h.service.NextID(ctx)
	if err != nil {
		return err
	}
	h.prompter.Printf("\tnext id: %d\n", next)

	answers, err := h.prompter.Form(
		"\tEnter fname: $",
		"\tEnter lname: $",
		"\tEnter experience ie. #: $",
	)
	if err != nil {
		return err
	}

	req := mechanic.AddMechanicRequest{FirstName: answers[0], LastName: answers[1]}
	if req.Experience, err = parseInt("experience", answers[2]); err != nil {
		return err
	}

	m, err := h.service.AddMechanic(ctx, &req)
	if err != nil {
		return err
	}

	h.prompter.Printf("\tmechanic id: %d\n", m.ID)
	return nil
}
