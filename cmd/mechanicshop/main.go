package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frontandrew/mechanicshop/internal/delivery/cli"
	"github.com/frontandrew/mechanicshop/internal/pkg/config"
	"github.com/frontandrew/mechanicshop/internal/pkg/database"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/repository/postgres"
	"github.com/frontandrew/mechanicshop/internal/usecase/car"
	"github.com/frontandrew/mechanicshop/internal/usecase/customer"
	"github.com/frontandrew/mechanicshop/internal/usecase/mechanic"
	"github.com/frontandrew/mechanicshop/internal/usecase/report"
	"github.com/frontandrew/mechanicshop/internal/usecase/request"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, config.ErrUsage) {
		fmt.Fprintln(os.Stderr, "Usage: mechanicshop <dbname> <port> <user>")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log, err := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	if err != nil {
		log.Warn("Log output is not available, using stderr", map[string]interface{}{
			"output": cfg.Logger.Output,
			"error":  err.Error(),
		})
	}

	// =========================================================================
	// Подключение к PostgreSQL
	// =========================================================================

	fmt.Print("Connecting to database...")
	fmt.Printf("Connection URL: %s\n\n", cfg.Database.Address())

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Error("Unable to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
		fmt.Println("Make sure you started postgres on this machine")
		os.Exit(1)
	}
	fmt.Println("Done")

	defer func() {
		fmt.Print("Disconnecting from database...")
		database.Close(db)
		fmt.Println("Done\n\nBye !")
	}()

	log.Debug("Connected to PostgreSQL", map[string]interface{}{
		"host":        cfg.Database.Host,
		"port":        cfg.Database.Port,
		"database":    cfg.Database.Database,
		"id_strategy": cfg.Shop.IDStrategy,
	})

	// =========================================================================
	// Создание store и use case services
	// =========================================================================

	store := postgres.NewStore(db, cfg.Shop.IDStrategy)

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))

	customerService := customer.NewService(store, log)
	mechanicService := mechanic.NewService(store, log)
	carService := car.NewService(store, log, rng)
	requestService := request.NewService(store, log)
	reportService := report.NewService(store, log)

	// =========================================================================
	// Создание CLI handlers и меню
	// =========================================================================

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	printer := cli.NewPrinter(os.Stdout, cfg.Shop.ReportFormat)

	menu := cli.NewMenu(prompter, log, cli.Operations(
		cli.NewCustomerHandler(customerService, prompter),
		cli.NewMechanicHandler(mechanicService, prompter),
		cli.NewCarHandler(carService, prompter),
		cli.NewRequestHandler(requestService, prompter),
		cli.NewReportHandler(reportService, prompter, printer),
	)...)

	// =========================================================================
	// Запуск меню в goroutine
	// =========================================================================

	menuDone := make(chan error, 1)

	go func() {
		menuDone <- menu.Run(ctx)
	}()

	// =========================================================================
	// Завершение
	// =========================================================================

	// Канал для получения сигналов операционной системы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Блокируемся до выхода из меню или получения сигнала
	select {
	case err := <-menuDone:
		if err != nil {
			log.Error("Menu stopped", map[string]interface{}{
				"error": err.Error(),
			})
		}

	case sig := <-shutdown:
		fmt.Println()
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
	}
}
