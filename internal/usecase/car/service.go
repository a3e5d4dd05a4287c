package car

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/repository"
	"github.com/frontandrew/mechanicshop/internal/usecase/guard"
)

// AddCarRequest - запрос на добавление автомобиля клиенту.
// VIN - кандидат, показанный пользователю; если к моменту записи он занят,
// генерируется новый.
type AddCarRequest struct {
	CustomerID int
	VIN        string
	Make       string
	Model      string
	Year       int
}

// AddCarResult - созданные автомобиль и связь владения
type AddCarResult struct {
	Car       *domain.Car
	Ownership *domain.Ownership
}

// Service содержит бизнес-логику работы с автомобилями
type Service struct {
	store  repository.Store
	logger logger.Logger
	rng    *rand.Rand
}

// NewService создает новый экземпляр CarService.
// rng задается снаружи, чтобы тесты могли получить воспроизводимые VIN.
func NewService(store repository.Store, logger logger.Logger, rng *rand.Rand) *Service {
	return &Service{
		store:  store,
		logger: logger,
		rng:    rng,
	}
}

// NextOwnershipID возвращает вероятный ownership_id следующей связи
func (s *Service) NextOwnershipID(ctx context.Context) (int, error) {
	return s.store.Repositories().Ownerships.NextID(ctx)
}

// NewVIN возвращает VIN, которого сейчас нет в таблице car
func (s *Service) NewVIN(ctx context.Context) (string, error) {
	return s.uniqueVIN(ctx, s.store.Repositories().Cars, "")
}

// AddCar создает автомобиль и связь владения в одной транзакции.
// Клиент должен существовать, иначе возвращается domain.ErrCustomerNotFound
// и ничего не пишется.
func (s *Service) AddCar(ctx context.Context, req *AddCarRequest) (*AddCarResult, error) {
	result := &AddCarResult{}

	err := s.store.WithinTransaction(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		err := guard.Run(ctx,
			guard.Exists("customer_id", func(ctx context.Context) (bool, error) {
				return repos.Customers.Exists(ctx, req.CustomerID)
			}, domain.ErrCustomerNotFound),
		)
		if err != nil {
			return err
		}

		vin, err := s.uniqueVIN(ctx, repos.Cars, req.VIN)
		if err != nil {
			return err
		}
		if vin != req.VIN && req.VIN != "" {
			s.logger.Warn("VIN taken before insert, regenerated", map[string]interface{}{
				"vin":     req.VIN,
				"new_vin": vin,
			})
		}

		car := &domain.Car{
			VIN:   vin,
			Make:  req.Make,
			Model: req.Model,
			Year:  req.Year,
		}
		if err := car.Validate(); err != nil {
			return err
		}

		if err := repos.Cars.Create(ctx, car); err != nil {
			return fmt.Errorf("failed to create car: %w", err)
		}

		ownership := &domain.Ownership{
			CustomerID: req.CustomerID,
			VIN:        car.VIN,
		}
		if err := repos.Ownerships.Create(ctx, ownership); err != nil {
			return fmt.Errorf("failed to create ownership: %w", err)
		}

		result.Car = car
		result.Ownership = ownership
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Car created", map[string]interface{}{
		"vin":          result.Car.VIN,
		"customer_id":  req.CustomerID,
		"ownership_id": result.Ownership.ID,
	})

	return result, nil
}

// uniqueVIN проверяет candidate (если задан) и генерирует новые VIN,
// пока не найдется свободный. Число попыток не ограничено.
func (s *Service) uniqueVIN(ctx context.Context, cars repository.CarRepository, candidate string) (string, error) {
	vin := candidate
	if vin == "" {
		vin = domain.GenerateVIN(s.rng)
	}

	for {
		taken, err := cars.ExistsByVIN(ctx, vin)
		if err != nil {
			return "", fmt.Errorf("failed to check vin: %w", err)
		}
		if !taken {
			return vin, nil
		}

		s.logger.Debug("VIN collision", map[string]interface{}{"vin": vin})
		vin = domain.GenerateVIN(s.rng)
	}
}
