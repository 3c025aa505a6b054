package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehouse-manager/internal/application/auth"
	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	"github.com/jhoicas/warehouse-manager/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC   *inventory.StockUseCase
	OrderUC   *inventory.OrderUseCase
	ReportUC  *inventory.ReportUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token); las mutaciones solo para operator
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	operatorOnly := RequireRole(jwt.RoleOperator)
	anyRole := RequireRole(jwt.RoleOperator, jwt.RoleViewer)

	// Stock: las rutas fijas antes de /:product
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.ReportUC)
	stock.Get("/", anyRole, stockHandler.List)
	stock.Get("/report.pdf", anyRole, stockHandler.ReportPDF)
	stock.Get("/export.xml", anyRole, stockHandler.ExportXML)
	stock.Get("/:product", anyRole, stockHandler.Get)
	stock.Post("/:product/add", operatorOnly, stockHandler.Add)
	stock.Post("/:product/take", operatorOnly, stockHandler.Take)

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", operatorOnly, orderHandler.Create)
	orders.Get("/", anyRole, orderHandler.List)
	orders.Get("/:id", anyRole, orderHandler.GetByID)
	orders.Get("/:id/can-fill", anyRole, orderHandler.CanFill)
	orders.Post("/:id/fill", operatorOnly, orderHandler.Fill)
}
