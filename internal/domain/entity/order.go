package entity

import (
	"errors"

	"github.com/jhoicas/warehouse-manager/internal/domain"
	"github.com/jhoicas/warehouse-manager/internal/domain/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain/repository"
)

// Order representa un pedido de una cantidad fija de un producto; se despacha a lo sumo una vez.
// La bodega se recibe en cada llamada y nunca se retiene.
type Order struct {
	product string
	amount  int
	filled  bool
}

// NewOrder valida el producto (ErrInvalidArgument) y luego la cantidad (ErrInvalidAmount).
func NewOrder(product string, amount int) (*Order, error) {
	if err := inventory.ValidateProductName(product); err != nil {
		return nil, err
	}
	if err := inventory.ValidateOrderAmount(amount); err != nil {
		return nil, err
	}
	return &Order{product: product, amount: amount}, nil
}

// Product nombre del producto pedido.
func (o *Order) Product() string { return o.product }

// Amount unidades pedidas.
func (o *Order) Amount() int { return o.amount }

// IsFilled indica si la orden ya fue despachada.
func (o *Order) IsFilled() bool { return o.filled }

// CanFillOrder consulta la bodega sin reservar stock: el resultado es solo orientativo.
// Siempre hace exactamente una llamada a HasProduct y una a CurrentStock, en ese orden,
// aunque HasProduct devuelva false. ErrNoSuchProduct de CurrentStock sobre un producto
// ausente es la respuesta esperada (false, nil); cualquier otro error se devuelve tal cual.
func (o *Order) CanFillOrder(w repository.WarehouseRepository) (bool, error) {
	hasProduct, hasErr := w.HasProduct(o.product)
	current, stockErr := w.CurrentStock(o.product)
	if hasErr != nil {
		return false, hasErr
	}
	if stockErr != nil {
		if !hasProduct && errors.Is(stockErr, domain.ErrNoSuchProduct) {
			return false, nil
		}
		return false, stockErr
	}
	return hasProduct && current >= o.amount, nil
}

// Fill descuenta el stock de la orden con una única llamada a TakeStock.
// Devuelve ErrOrderAlreadyFilled sin tocar la bodega si ya fue despachada; cualquier
// falla de la bodega se envuelve en *domain.WarehouseOperationError y la orden sigue sin despachar.
func (o *Order) Fill(w repository.WarehouseRepository) error {
	if o.filled {
		return domain.ErrOrderAlreadyFilled
	}
	if err := w.TakeStock(o.product, o.amount); err != nil {
		return domain.NewWarehouseOperationError(err)
	}
	o.filled = true
	return nil
}
