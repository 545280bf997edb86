package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mantenimiento-api/internal/application/auth"
	"github.com/jhoicas/Mantenimiento-api/internal/application/inventory"
	"github.com/jhoicas/Mantenimiento-api/internal/application/movement"
	"github.com/jhoicas/Mantenimiento-api/internal/application/usecase"
	"github.com/jhoicas/Mantenimiento-api/internal/application/workorder"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC     *inventory.StockUseCase
	ReportUC    *inventory.ReportUseCase
	MovementUC  *movement.UseCase
	WorkOrderUC *workorder.UseCase
	TaskUC      *workorder.TaskUseCase
	PartUC      *workorder.PartUsageUseCase
	PDFUC       *workorder.PDFUseCase
	WarehouseUC *usecase.WarehouseUseCase
	AircraftUC  *usecase.AircraftUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Liberar órdenes y firmar RII exige rol inspector (o admin).
	inspectorOnly := RequireRole(entity.RoleInspector, entity.RoleAdmin)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Aircraft (protegido)
	fleet := protected.Group("/aircraft")
	aircraftHandler := NewAircraftHandler(deps.AircraftUC)
	fleet.Post("/", aircraftHandler.Create)
	fleet.Get("/", aircraftHandler.List)
	fleet.Get("/:id", aircraftHandler.GetByID)
	fleet.Put("/:id", aircraftHandler.Update)
	fleet.Delete("/:id", aircraftHandler.Delete)

	// Stock items (protegido)
	stock := protected.Group("/stock-items")
	stockHandler := NewStockHandler(deps.StockUC, deps.ReportUC)
	stock.Post("/", stockHandler.Create)
	stock.Get("/", stockHandler.List)
	stock.Get("/low-stock", stockHandler.LowStock)
	stock.Get("/export", stockHandler.Export)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Post("/:id/reserve", stockHandler.Reserve)
	stock.Post("/:id/release", stockHandler.Release)
	stock.Post("/:id/adjust", stockHandler.Adjust)
	stock.Delete("/:id", stockHandler.Delete)

	// Movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Post("/:id/approve", movementHandler.Approve)
	movements.Post("/:id/complete", movementHandler.Complete)
	movements.Post("/:id/cancel", movementHandler.Cancel)
	movements.Delete("/:id", movementHandler.Delete)

	// Work orders + checklist + consumos (protegido)
	workOrders := protected.Group("/work-orders")
	woHandler := NewWorkOrderHandler(deps.WorkOrderUC, deps.TaskUC, deps.PartUC, deps.PDFUC)
	workOrders.Post("/", woHandler.Create)
	workOrders.Get("/", woHandler.List)
	workOrders.Get("/:id", woHandler.GetByID)
	workOrders.Put("/:id", woHandler.Update)
	workOrders.Delete("/:id", woHandler.Delete)
	workOrders.Patch("/:id/status", woHandler.UpdateStatus)
	workOrders.Patch("/:id/assign", woHandler.Assign)
	workOrders.Post("/:id/start", woHandler.Start)
	workOrders.Post("/:id/complete", woHandler.Complete)
	workOrders.Post("/:id/release", inspectorOnly, woHandler.Release)
	workOrders.Post("/:id/cancel", woHandler.Cancel)
	workOrders.Get("/:id/pdf", woHandler.ReleaseCertificate)
	workOrders.Post("/:id/tasks", woHandler.AddTask)
	workOrders.Post("/:id/tasks/batch", woHandler.AddTasks)
	workOrders.Get("/:id/tasks", woHandler.ListTasks)
	workOrders.Post("/:id/parts", woHandler.AddPart)
	workOrders.Get("/:id/parts", woHandler.ListParts)

	// Tasks (protegido)
	tasks := protected.Group("/tasks")
	tasks.Put("/:id", woHandler.UpdateTask)
	tasks.Patch("/:id/status", woHandler.UpdateTaskStatus)
	tasks.Post("/:id/sign-off", inspectorOnly, woHandler.SignOffTask)
	tasks.Delete("/:id", woHandler.DeleteTask)

	// Part usages (protegido)
	parts := protected.Group("/parts")
	parts.Delete("/:id", woHandler.DeletePart)
}
