package entity

import (
	"fmt"
	"sort"

	"github.com/jhoicas/warehouse-manager/internal/domain"
	"github.com/jhoicas/warehouse-manager/internal/domain/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*Warehouse)(nil)

// Warehouse representa una bodega en memoria: nombre de producto -> unidades disponibles.
// Un producto registrado nunca se elimina, aunque su stock llegue a 0.
// No es segura para uso concurrente; el llamador serializa el acceso.
type Warehouse struct {
	stock map[string]int
}

// NewWarehouse crea una bodega vacía.
func NewWarehouse() *Warehouse {
	return &Warehouse{stock: make(map[string]int)}
}

// HasProduct indica si el producto está registrado, sin importar la cantidad.
func (w *Warehouse) HasProduct(product string) (bool, error) {
	if err := inventory.ValidateProductName(product); err != nil {
		return false, err
	}
	_, ok := w.stock[product]
	return ok, nil
}

// CurrentStock devuelve las unidades disponibles del producto.
func (w *Warehouse) CurrentStock(product string) (int, error) {
	if err := inventory.ValidateProductName(product); err != nil {
		return 0, err
	}
	qty, ok := w.stock[product]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrNoSuchProduct, product)
	}
	return qty, nil
}

// AddStock suma amount al producto; si no existe lo registra con 0 primero.
func (w *Warehouse) AddStock(product string, amount int) error {
	if err := inventory.ValidateProductName(product); err != nil {
		return err
	}
	if err := inventory.ValidateNonNegative(amount); err != nil {
		return err
	}
	current := w.stock[product]
	if err := inventory.CheckAdd(product, current, amount); err != nil {
		return err
	}
	w.stock[product] = current + amount
	return nil
}

// TakeStock descuenta amount del producto. Si falla no modifica nada.
func (w *Warehouse) TakeStock(product string, amount int) error {
	if err := inventory.ValidateProductName(product); err != nil {
		return err
	}
	current, exists := w.stock[product]
	if err := inventory.CheckTake(product, exists, current, amount); err != nil {
		return err
	}
	w.stock[product] = current - amount
	return nil
}

// Stock devuelve una copia del inventario completo.
func (w *Warehouse) Stock() map[string]int {
	out := make(map[string]int, len(w.stock))
	for product, qty := range w.stock {
		out[product] = qty
	}
	return out
}

// List devuelve el inventario como filas ordenadas por producto.
func (w *Warehouse) List() ([]Stock, error) {
	return StockFromMap(w.stock), nil
}

// StockFromMap convierte un mapa producto -> cantidad en filas ordenadas por producto.
func StockFromMap(m map[string]int) []Stock {
	list := make([]Stock, 0, len(m))
	for product, qty := range m {
		list = append(list, Stock{Product: product, Quantity: qty})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Product < list[j].Product })
	return list
}
