package cli

import (
	"context"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
)

// ReportService определяет интерфейс для сервиса отчетов
type ReportService interface {
	ClosedRequestsWithBillBelow100(ctx context.Context) (*domain.Table, error)
	CustomersWithMoreThan20Cars(ctx context.Context) (*domain.Table, error)
	CarsBefore1995With50000Miles(ctx context.Context) (*domain.Table, error)
	TopCarsByServices(ctx context.Context, k int) (*domain.Table, error)
	CustomersByTotalBill(ctx context.Context) (*domain.Table, error)
}

// ReportHandler обрабатывает пункты меню 6-10
type ReportHandler struct {
	service  ReportService
	prompter *Prompter
	printer  *Printer
}

func NewReportHandler(service ReportService, prompter *Prompter, printer *Printer) *ReportHandler {
	return &ReportHandler{service: service, prompter: prompter, printer: printer}
}

func (h *ReportHandler) print(table *domain.Table, err error) error {
	if err != nil {
		return err
	}
	h.printer.Print(table)
	return nil
}

func (h *ReportHandler) ListCustomersWithBillLessThan100(ctx context.Context, log logger.Logger) error {
	return h.print(h.service.ClosedRequestsWithBillBelow100(ctx))
}

func (h *ReportHandler) ListCustomersWithMoreThan20Cars(ctx context.Context, log logger.Logger) error {
	return h.print(h.service.CustomersWithMoreThan20Cars(ctx))
}

func (h *ReportHandler) ListCarsBefore1995With50000Milles(ctx context.Context, log logger.Logger) error {
	return h.print(h.service.CarsBefore1995With50000Miles(ctx))
}

// ListKCarsWithTheMostServices - единственный отчет с вводом: сколько строк показать
func (h *ReportHandler) ListKCarsWithTheMostServices(ctx context.Context, log logger.Logger) error {
	line, err := h.prompter.Line("How many cars with the most services would you like to see listed?")
	if err != nil {
		return err
	}
	k, err := parseInt("k", line)
	if err != nil {
		return err
	}
	return h.print(h.service.TopCarsByServices(ctx, k))
}

func (h *ReportHandler) ListCustomersInDescendingOrderOfTheirTotalBill(ctx context.Context, log logger.Logger) error {
	return h.print(h.service.CustomersByTotalBill(ctx))
}
