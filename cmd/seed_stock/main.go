// seed_stock carga el stock inicial de una bodega desde un archivo XML
// (mismo formato que GET /api/stock/export.xml; acepta ISO-8859-1).
//
// Uso: go run ./cmd/seed_stock [ruta/stock.xml]
// Por defecto busca stock.xml en el directorio actual. Usa STOCK_BACKEND y WAREHOUSE_ID
// de la configuración; el backend memory no tiene sentido aquí y se rechaza.
package main

import (
	"context"
	"os"

	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
	"github.com/jhoicas/warehouse-manager/internal/infrastructure/stockbackend"
	"github.com/jhoicas/warehouse-manager/internal/infrastructure/xmlexport"
	"github.com/jhoicas/warehouse-manager/pkg/config"
	"github.com/jhoicas/warehouse-manager/pkg/logger"
)

func main() {
	xmlPath := "stock.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{
		Env:       cfg.App.Env,
		Level:     cfg.App.LogLevel,
		Service:   "seed_stock",
		Warehouse: cfg.Stock.WarehouseID,
	})

	if cfg.Stock.Backend == config.BackendMemory {
		log.Fatal().Msg("STOCK_BACKEND=memory: no hay dónde persistir el stock, use postgres o redis")
	}

	f, err := os.Open(xmlPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", xmlPath).Msg("abrir XML")
	}
	defer f.Close()

	report, err := xmlexport.ParseStockXML(f)
	if err != nil {
		log.Fatal().Err(err).Str("path", xmlPath).Msg("decodificar XML")
	}
	if report.WarehouseID != "" && report.WarehouseID != cfg.Stock.WarehouseID {
		log.Warn().
			Str("archivo", report.WarehouseID).
			Str("config", cfg.Stock.WarehouseID).
			Msg("la bodega del archivo no coincide; se carga en la bodega configurada")
	}

	backend, closeBackend, err := stockbackend.Open(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir backend de stock")
	}
	defer closeBackend()

	stockUC := inventory.NewStockUseCase(cfg.Stock.WarehouseID, backend, log)
	loaded, rejected := loadItems(stockUC, report.Items, log)

	log.Info().
		Str("path", xmlPath).
		Int("cargados", loaded).
		Int("rechazados", rejected).
		Msg("carga de stock finalizada")
	if rejected > 0 {
		closeBackend()
		os.Exit(1)
	}
}

// loadItems registra cada item con AddStock; los rechazados se loguean uno por uno y no detienen la carga.
func loadItems(stockUC *inventory.StockUseCase, items []entity.Stock, log *logger.Logger) (loaded, rejected int) {
	for i, item := range items {
		if _, err := stockUC.AddStock(item.Product, item.Quantity); err != nil {
			log.Error().
				Err(err).
				Int("item", i+1).
				Str("product", item.Product).
				Int("quantity", item.Quantity).
				Msg("item rechazado")
			rejected++
			continue
		}
		loaded++
	}
	return loaded, rejected
}
