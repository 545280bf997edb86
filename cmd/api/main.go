package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Mantenimiento-api/internal/application/auth"
	"github.com/jhoicas/Mantenimiento-api/internal/application/inventory"
	"github.com/jhoicas/Mantenimiento-api/internal/application/movement"
	"github.com/jhoicas/Mantenimiento-api/internal/application/usecase"
	"github.com/jhoicas/Mantenimiento-api/internal/application/workorder"
	infraexcel "github.com/jhoicas/Mantenimiento-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Mantenimiento-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Mantenimiento-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Mantenimiento-api/internal/interfaces/http"
	"github.com/jhoicas/Mantenimiento-api/pkg/config"
	"github.com/jhoicas/Mantenimiento-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (las secuencias leer-modificar-escribir
	// corren sobre repos atados a tx vía TxRunner)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	aircraftRepo := postgres.NewAircraftRepository(pool)
	itemRepo := postgres.NewStockItemRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	woRepo := postgres.NewWorkOrderRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	partRepo := postgres.NewPartUsageRepository(pool)
	counterRepo := postgres.NewCounterRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	stockUC := inventory.NewStockUseCase(txRunner, itemRepo, warehouseRepo)
	reportUC := inventory.NewReportUseCase(itemRepo, infraexcel.NewStockExporter())
	movementUC := movement.NewUseCase(txRunner, movRepo, itemRepo, warehouseRepo, counterRepo)
	workOrderUC := workorder.NewUseCase(txRunner, woRepo, taskRepo, aircraftRepo, counterRepo)
	taskUC := workorder.NewTaskUseCase(woRepo, taskRepo)
	partUC := workorder.NewPartUsageUseCase(woRepo, partRepo, itemRepo)
	pdfUC := workorder.NewPDFUseCase(woRepo, aircraftRepo, taskRepo, partRepo, infrapdf.NewMarotoReleaseCertificate())
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	aircraftUC := usecase.NewAircraftUseCase(aircraftRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mantenimiento API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:     stockUC,
		ReportUC:    reportUC,
		MovementUC:  movementUC,
		WorkOrderUC: workOrderUC,
		TaskUC:      taskUC,
		PartUC:      partUC,
		PDFUC:       pdfUC,
		WarehouseUC: warehouseUC,
		AircraftUC:  aircraftUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
