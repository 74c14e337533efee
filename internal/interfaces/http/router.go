package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-mes-api/internal/application/finance"
	"github.com/invorya/erp-mes-api/internal/application/masters"
	"github.com/invorya/erp-mes-api/internal/application/production"
	"github.com/invorya/erp-mes-api/internal/application/sales"
	"github.com/invorya/erp-mes-api/internal/application/stock"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *masters.ItemUseCase
	WarehouseUC *masters.WarehouseUseCase
	PartyUC     *masters.PartyUseCase

	MoveUC     *stock.MoveUseCase
	SnapshotUC *stock.SnapshotUseCase

	ProductionUC *production.UseCase
	DocumentUC   *sales.DocumentUseCase
	FinanceUC    *finance.UseCase

	ItemRepo      repository.ItemRepository
	WarehouseRepo repository.WarehouseRepository
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Maestros
	mastersHandler := NewMastersHandler(deps.ItemUC, deps.WarehouseUC, deps.PartyUC)
	items := api.Group("/items")
	items.Post("/", mastersHandler.CreateItem)
	items.Get("/", mastersHandler.ListItems)
	items.Get("/:code", mastersHandler.GetItem)

	warehouses := api.Group("/warehouses")
	warehouses.Post("/", mastersHandler.CreateWarehouse)
	warehouses.Get("/", mastersHandler.ListWarehouses)

	parties := api.Group("/parties")
	parties.Post("/", mastersHandler.CreateParty)
	parties.Get("/", mastersHandler.ListParties)

	// Motor de stock
	stockHandler := NewStockHandler(deps.MoveUC, deps.SnapshotUC, deps.ItemRepo, deps.WarehouseRepo)
	stockGroup := api.Group("/stock")
	stockGroup.Post("/move", stockHandler.Move)
	stockGroup.Get("/snapshot", stockHandler.Snapshot)
	stockGroup.Get("/", stockHandler.Snapshot)
	stockGroup.Get("/movements", stockHandler.Movements)

	// Producción
	productionHandler := NewProductionHandler(deps.ProductionUC, deps.ItemRepo, deps.WarehouseRepo)
	productionGroup := api.Group("/production")
	productionGroup.Post("/wo", productionHandler.CreateWorkOrder)
	productionGroup.Get("/wo", productionHandler.ListWorkOrders)
	productionGroup.Get("/wo/:id", productionHandler.GetWorkOrder)
	productionGroup.Post("/consume", productionHandler.Consume)
	productionGroup.Post("/produce", productionHandler.Produce)

	// Documentos de venta
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	docs := api.Group("/docs")
	docs.Post("/", documentHandler.Create)
	docs.Get("/", documentHandler.List)
	docs.Get("/:id", documentHandler.GetByID)

	// Caja/banco y cheques
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financeGroup := api.Group("/finance")
	financeGroup.Post("/accounts", financeHandler.CreateAccount)
	financeGroup.Post("/tx", financeHandler.CreateTransaction)
	financeGroup.Get("/tx", financeHandler.ListTransactions)
	financeGroup.Post("/cheques", financeHandler.CreateCheque)
	financeGroup.Get("/cheques", financeHandler.ListCheques)
}
