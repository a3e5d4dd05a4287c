package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/usecase/guard"
	"github.com/google/uuid"
)

// Handler - одна операция меню. Получает logger с operation_id
type Handler func(ctx context.Context, log logger.Logger) error

// Operation - пункт меню
type Operation struct {
	Title string
	Run   Handler
}

// diagnostics - нарушенные предусловия и текст, который видит пользователь
var diagnostics = []struct {
	err  error
	text string
}{
	{domain.ErrCustomerNotFound, "Error (customer_id)"},
	{domain.ErrCarNotFound, "Error (car_vin)"},
	{domain.ErrServiceRequestNotFound, "Error (service_request doesn't exist)"},
	{domain.ErrServiceRequestClosed, "Error (service_request was already closed)"},
	{domain.ErrMechanicNotFound, "Error (mechanic doesn't exist)"},
	{domain.ErrInvalidLimit, "Error (k must be positive)"},
}

// Diagnostic возвращает текст диагностики для нарушенного предусловия
func Diagnostic(err error) (string, bool) {
	for _, d := range diagnostics {
		if errors.Is(err, d.err) {
			return d.text, true
		}
	}
	return "", false
}

// Menu - главный цикл: показать меню, прочитать номер, выполнить операцию.
// Последний пункт (len(operations)+1) - выход.
type Menu struct {
	prompter   *Prompter
	operations []Operation
	logger     logger.Logger
}

// NewMenu создает меню из операций в порядке их номеров
func NewMenu(prompter *Prompter, logger logger.Logger, operations ...Operation) *Menu {
	return &Menu{
		prompter:   prompter,
		operations: operations,
		logger:     logger,
	}
}

// Operations собирает десять операций мастерской в порядке меню
func Operations(customers *CustomerHandler, mechanics *MechanicHandler, cars *CarHandler, requests *RequestHandler, reports *ReportHandler) []Operation {
	return []Operation{
		{Title: "AddCustomer", Run: customers.AddCustomer},
		{Title: "AddMechanic", Run: mechanics.AddMechanic},
		{Title: "AddCar", Run: cars.AddCar},
		{Title: "InsertServiceRequest", Run: requests.InsertServiceRequest},
		{Title: "CloseServiceRequest", Run: requests.CloseServiceRequest},
		{Title: "ListCustomersWithBillLessThan100", Run: reports.ListCustomersWithBillLessThan100},
		{Title: "ListCustomersWithMoreThan20Cars", Run: reports.ListCustomersWithMoreThan20Cars},
		{Title: "ListCarsBefore1995With50000Milles", Run: reports.ListCarsBefore1995With50000Milles},
		{Title: "ListKCarsWithTheMostServices", Run: reports.ListKCarsWithTheMostServices},
		{Title: "ListCustomersInDescendingOrderOfTheirTotalBill", Run: reports.ListCustomersInDescendingOrderOfTheirTotalBill},
	}
}

// Run крутит меню, пока не выбран выход или не закончился ввод.
// Ошибки операций не прерывают цикл.
func (m *Menu) Run(ctx context.Context) error {
	exit := len(m.operations) + 1

	for {
		m.printMenu()

		choice, err := m.readChoice()
		if errors.Is(err, ErrInputClosed) {
			m.logger.Info("Input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}

		if choice == exit {
			return nil
		}
		if choice < 1 || choice > len(m.operations) {
			continue
		}

		m.dispatch(ctx, m.operations[choice-1])
	}
}

func (m *Menu) printMenu() {
	m.prompter.Printf("MAIN MENU\n")
	m.prompter.Printf("---------\n")
	for i, op := range m.operations {
		m.prompter.Printf("%d. %s\n", i+1, op.Title)
	}
	m.prompter.Printf("%d. < EXIT\n", len(m.operations)+1)
}

// readChoice возвращается только с числом или ошибкой ввода
func (m *Menu) readChoice() (int, error) {
	for {
		line, err := m.prompter.Line("Please make your choice: ")
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.prompter.Printf("Your input is invalid!\n")
			continue
		}
		return choice, nil
	}
}

func (m *Menu) dispatch(ctx context.Context, op Operation) {
	log := m.logger.With("operation_id", uuid.NewString()).With("operation", op.Title)
	log.Debug("Operation started")

	err := op.Run(ctx, log)
	if err == nil {
		return
	}

	if text, ok := Diagnostic(err); ok {
		m.prompter.Printf("\t%s\n", text)
		fields := map[string]interface{}{"error": err.Error()}
		var violation *guard.Violation
		if errors.As(err, &violation) {
			fields["rule"] = violation.Rule
		}
		log.Debug("Precondition failed", fields)
		return
	}

	log.Error("Operation failed", map[string]interface{}{
		"error": err.Error(),
	})
}
