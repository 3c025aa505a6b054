// @title        Warehouse Manager API
// @version      1.0
// @description  API de stock y órdenes de una bodega.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
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

	_ "github.com/jhoicas/warehouse-manager/docs"
	"github.com/jhoicas/warehouse-manager/internal/application/auth"
	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	infrapdf "github.com/jhoicas/warehouse-manager/internal/infrastructure/pdf"
	"github.com/jhoicas/warehouse-manager/internal/infrastructure/stockbackend"
	"github.com/jhoicas/warehouse-manager/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/warehouse-manager/internal/interfaces/http"
	"github.com/jhoicas/warehouse-manager/pkg/config"
	"github.com/jhoicas/warehouse-manager/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:       cfg.App.Env,
		Level:     cfg.App.LogLevel,
		Service:   cfg.App.Name,
		Warehouse: cfg.Stock.WarehouseID,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Stock.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, closeBackend, err := stockbackend.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Stock.Backend).Msg("abrir backend de stock")
	}
	defer closeBackend()

	// Un único punto de serialización para todo el proceso
	warehouse := inventory.NewSerializedWarehouse(backend)

	stockUC := inventory.NewStockUseCase(cfg.Stock.WarehouseID, warehouse, log)
	orderUC := inventory.NewOrderUseCase(warehouse, log)
	reportUC := inventory.NewReportUseCase(
		cfg.Stock.WarehouseID, warehouse,
		infrapdf.NewMarotoStockReport(), xmlexport.NewStockXML(),
	)
	authUC := auth.NewAuthUseCase(
		auth.Operator{User: cfg.Operator.User, PasswordHash: cfg.Operator.PasswordHash},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)
	if cfg.Operator.PasswordHash == "" {
		log.Warn().Msg("OPERATOR_PASSWORD_HASH vacío: login deshabilitado")
	}

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
		Title:    "Warehouse Manager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "warehouse": cfg.Stock.WarehouseID})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:   stockUC,
		OrderUC:   orderUC,
		ReportUC:  reportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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
