package inventory

import (
	"github.com/jhoicas/warehouse-manager/internal/application/dto"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
	"github.com/jhoicas/warehouse-manager/pkg/logger"
)

// StockUseCase casos de uso de consulta y movimiento de stock de una bodega.
type StockUseCase struct {
	warehouseID string
	backend     StockBackend
	log         *logger.Logger
}

// NewStockUseCase construye el caso de uso. backend debería venir serializado (NewSerializedWarehouse).
func NewStockUseCase(warehouseID string, backend StockBackend, log *logger.Logger) *StockUseCase {
	return &StockUseCase{warehouseID: warehouseID, backend: backend, log: log.Component("stock")}
}

// WarehouseID identificador de la bodega atendida.
func (uc *StockUseCase) WarehouseID() string { return uc.warehouseID }

// HasProduct indica si el producto está registrado.
func (uc *StockUseCase) HasProduct(product string) (bool, error) {
	return uc.backend.HasProduct(product)
}

// CurrentStock devuelve las unidades del producto.
func (uc *StockUseCase) CurrentStock(product string) (*dto.StockItemResponse, error) {
	qty, err := uc.backend.CurrentStock(product)
	if err != nil {
		return nil, err
	}
	return &dto.StockItemResponse{Product: product, Quantity: qty}, nil
}

// AddStock registra una entrada y devuelve el stock resultante.
func (uc *StockUseCase) AddStock(product string, amount int) (*dto.StockItemResponse, error) {
	if err := uc.backend.AddStock(product, amount); err != nil {
		uc.log.Warn().Err(err).Str("product", product).Int("amount", amount).Msg("entrada de stock rechazada")
		return nil, err
	}
	uc.log.Info().Str("product", product).Int("amount", amount).Msg("stock agregado")
	return uc.CurrentStock(product)
}

// TakeStock registra una salida y devuelve el stock resultante.
func (uc *StockUseCase) TakeStock(product string, amount int) (*dto.StockItemResponse, error) {
	if err := uc.backend.TakeStock(product, amount); err != nil {
		uc.log.Warn().Err(err).Str("product", product).Int("amount", amount).Msg("salida de stock rechazada")
		return nil, err
	}
	uc.log.Info().Str("product", product).Int("amount", amount).Msg("stock descontado")
	return uc.CurrentStock(product)
}

// Snapshot devuelve todo el stock de la bodega ordenado por producto.
func (uc *StockUseCase) Snapshot() (*dto.StockListResponse, error) {
	list, err := uc.backend.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toStockItemResponse(s))
	}
	return &dto.StockListResponse{WarehouseID: uc.warehouseID, Items: items, Total: len(items)}, nil
}

func toStockItemResponse(s entity.Stock) dto.StockItemResponse {
	return dto.StockItemResponse{Product: s.Product, Quantity: s.Quantity}
}
