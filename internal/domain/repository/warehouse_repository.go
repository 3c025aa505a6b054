package repository

// WarehouseRepository define el contrato de capacidades de una bodega (DIP).
// Order solo conoce este puerto; la bodega en memoria, PostgreSQL y Redis lo implementan.
type WarehouseRepository interface {
	// HasProduct indica si el producto está registrado, aunque su stock sea 0.
	HasProduct(product string) (bool, error)
	// CurrentStock devuelve la cantidad actual; domain.ErrNoSuchProduct si no existe.
	CurrentStock(product string) (int, error)
	// AddStock registra el producto si no existe y suma amount (amount >= 0).
	AddStock(product string, amount int) error
	// TakeStock descuenta amount. Orden de validación: nombre, existencia, suficiencia, negativo.
	TakeStock(product string, amount int) error
}
