package cli

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/usecase/car"
)

// CarService определяет интерфейс для сервиса автомобилей
type CarService interface {
	NextOwnershipID(ctx context.Context) (int, error)
	NewVIN(ctx context.Context) (string, error)
	AddCar(ctx context.Context, req *car.AddCarRequest) (*car.AddCarResult, error)
}

// CarHandler обрабатывает пункт меню 3
type CarHandler struct {
	service  CarService
	prompter *Prompter
}

func NewCarHandler(service CarService, prompter *Prompter) *CarHandler {
	return &CarHandler{service: service, prompter: prompter}
}

// AddCar - пункт 3: VIN генерируется заранее и показывается пользователю
func (h *CarHandler) AddCar(ctx context.Context, log logger.Logger) error {
	vin, err := h.service.NewVIN(ctx)
	if err != nil {
		return err
	}
	next, err := h.service.NextOwnershipID(ctx)
	if err != nil {
		return err
	}

	h.prompter.Printf("\tnext ownership_id: $%d\n", next)
	h.prompter.Printf("\tnext vin: $%s\n", vin)

	answers, err := h.prompter.Form(
		"\tEnter customer_id: $",
		"\tEnter make: $",
		"\tEnter model: $",
		"\tEnter year ie. ####: $",
	)
	if err != nil {
		return err
	}

	req := car.AddCarRequest{VIN: vin, Make: answers[1], Model: answers[2]}
	if req.CustomerID, err = parseInt("customer_id", answers[0]); err != nil {
		return err
	}
	if req.Year, err = parseInt("year", answers[3]); err != nil {
		return err
	}

	result, err := h.service.AddCar(ctx, &req)
	if err != nil {
		return err
	}

	if result.Car.VIN != vin {
		h.prompter.Printf("\tvin: $%s\n", result.Car.VIN)
	}
	log.Debug("Car added", map[string]interface{}{"vin": result.Car.VIN})
	return nil
}
