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

	"github.com/invorya/erp-mes-api/internal/application/finance"
	"github.com/invorya/erp-mes-api/internal/application/masters"
	"github.com/invorya/erp-mes-api/internal/application/production"
	"github.com/invorya/erp-mes-api/internal/application/sales"
	"github.com/invorya/erp-mes-api/internal/application/stock"
	"github.com/invorya/erp-mes-api/internal/infrastructure/postgres"
	httpRouter "github.com/invorya/erp-mes-api/internal/interfaces/http"
	"github.com/invorya/erp-mes-api/pkg/config"
	"github.com/invorya/erp-mes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	// Repos sobre el pool (lecturas y maestros); las escrituras del libro pasan
	// por el TxRunner con repos atados a la transacción.
	itemRepo := postgres.NewItemRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	balanceRepo := postgres.NewStockBalanceRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	woRepo := postgres.NewWorkOrderRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	itemUC := masters.NewItemUseCase(itemRepo)
	warehouseUC := masters.NewWarehouseUseCase(warehouseRepo)
	partyUC := masters.NewPartyUseCase(partyRepo)
	moveUC := stock.NewMoveUseCase(txRunner, itemRepo, warehouseRepo)
	snapshotUC := stock.NewSnapshotUseCase(balanceRepo, movementRepo)
	productionUC := production.NewUseCase(txRunner, woRepo, itemRepo, warehouseRepo)
	documentUC := sales.NewDocumentUseCase(txRunner, docRepo, partyRepo, itemRepo)
	financeUC := finance.NewUseCase(financeRepo, partyRepo)

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
		Title:    "ERP MES API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:        itemUC,
		WarehouseUC:   warehouseUC,
		PartyUC:       partyUC,
		MoveUC:        moveUC,
		SnapshotUC:    snapshotUC,
		ProductionUC:  productionUC,
		DocumentUC:    documentUC,
		FinanceUC:     financeUC,
		ItemRepo:      itemRepo,
		WarehouseRepo: warehouseRepo,
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
