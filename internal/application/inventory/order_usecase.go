package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/warehouse-manager/internal/application/dto"
	"github.com/jhoicas/warehouse-manager/internal/domain"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
	"github.com/jhoicas/warehouse-manager/internal/domain/repository"
	"github.com/jhoicas/warehouse-manager/pkg/logger"
)

// orderRecord orden registrada con sus metadatos de aplicación.
type orderRecord struct {
	id        string
	order     *entity.Order
	createdAt time.Time
	filledAt  *time.Time
}

// OrderUseCase crea órdenes y las despacha contra la bodega.
// Las órdenes viven solo en memoria del proceso.
type OrderUseCase struct {
	mu        sync.Mutex
	warehouse repository.WarehouseRepository
	orders    map[string]*orderRecord
	sequence  []string
	now       func() time.Time
	log       *logger.Logger
}

// NewOrderUseCase construye el caso de uso sobre la bodega indicada.
func NewOrderUseCase(warehouse repository.WarehouseRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		warehouse: warehouse,
		orders:    make(map[string]*orderRecord),
		now:       time.Now,
		log:       log.Component("orders"),
	}
}

// Create valida y registra una orden sin despachar.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order, err := entity.NewOrder(in.Product, in.Amount)
	if err != nil {
		return nil, err
	}
	rec := &orderRecord{id: uuid.New().String(), order: order, createdAt: uc.now()}

	uc.mu.Lock()
	uc.orders[rec.id] = rec
	uc.sequence = append(uc.sequence, rec.id)
	uc.mu.Unlock()

	uc.log.Info().Str("order_id", rec.id).Str("product", in.Product).Int("amount", in.Amount).Msg("orden creada")
	return toOrderResponse(rec), nil
}

// Get obtiene una orden por ID.
func (uc *OrderUseCase) Get(id string) (*dto.OrderResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	rec, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(rec), nil
}

// List devuelve las órdenes en orden de creación.
func (uc *OrderUseCase) List() *dto.OrderListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	items := make([]dto.OrderResponse, 0, len(uc.sequence))
	for _, id := range uc.sequence {
		items = append(items, *toOrderResponse(uc.orders[id]))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}
}

// CanFill consulta si hoy se podría despachar la orden. No reserva stock.
func (uc *OrderUseCase) CanFill(id string) (*dto.CanFillResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	rec, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	canFill, err := rec.order.CanFillOrder(uc.warehouse)
	if err != nil {
		uc.log.Warn().Err(err).Str("order_id", id).Msg("no se pudo consultar la bodega")
		return nil, err
	}
	uc.log.Debug().Str("order_id", id).Bool("can_fill", canFill).Msg("consulta de despacho")
	return &dto.CanFillResponse{OrderID: id, CanFill: canFill}, nil
}

// Fill despacha la orden. Dos Fill concurrentes sobre la misma orden no pueden descontar dos veces.
func (uc *OrderUseCase) Fill(id string) (*dto.OrderResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	rec, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	if err := rec.order.Fill(uc.warehouse); err != nil {
		uc.log.Warn().Err(err).Str("order_id", id).Msg("no se pudo despachar la orden")
		return nil, err
	}
	filledAt := uc.now()
	rec.filledAt = &filledAt
	uc.log.Info().Str("order_id", id).Str("product", rec.order.Product()).Int("amount", rec.order.Amount()).Msg("orden despachada")
	return toOrderResponse(rec), nil
}

// find requiere uc.mu tomado.
func (uc *OrderUseCase) find(id string) (*orderRecord, error) {
	rec, ok := uc.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, id)
	}
	return rec, nil
}

func toOrderResponse(rec *orderRecord) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:        rec.id,
		Product:   rec.order.Product(),
		Amount:    rec.order.Amount(),
		Filled:    rec.order.IsFilled(),
		CreatedAt: rec.createdAt,
		FilledAt:  rec.filledAt,
	}
}
