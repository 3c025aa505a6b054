package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
	"github.com/jhoicas/warehouse-manager/internal/domain/repository"
)

// StockLister lectura masiva del stock (snapshot ordenado por producto).
type StockLister interface {
	List() ([]entity.Stock, error)
}

// StockBackend es lo que debe ofrecer un backend de stock: el contrato de la bodega más el snapshot.
// Lo implementan entity.Warehouse, postgres.WarehouseStockRepo y redis.WarehouseStockRepo.
type StockBackend interface {
	repository.WarehouseRepository
	StockLister
}

// StockPDFGenerator genera la representación gráfica del stock.
type StockPDFGenerator interface {
	GenerateStockPDF(ctx context.Context, warehouseID string, items []entity.Stock, generatedAt time.Time) ([]byte, error)
}

// StockXMLExporter exporta el stock como XML canónico.
type StockXMLExporter interface {
	ExportStockXML(ctx context.Context, warehouseID string, items []entity.Stock, generatedAt time.Time) ([]byte, error)
}
