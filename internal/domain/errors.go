package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidArgument          = errors.New("argumento inválido")
	ErrInvalidAmount            = errors.New("cantidad de la orden inválida")
	ErrNoSuchProduct            = errors.New("el producto no existe en la bodega")
	ErrInsufficientStock        = errors.New("stock insuficiente")
	ErrOrderAlreadyFilled       = errors.New("la orden ya fue despachada")
	ErrWarehouseOperationFailed = errors.New("falló la operación sobre la bodega")
	ErrOrderNotFound            = errors.New("orden no encontrada")
	ErrUnauthorized             = errors.New("no autorizado")
)

// WarehouseOperationError envuelve cualquier falla devuelta por la bodega durante Fill.
// Cause conserva el error original para diagnóstico.
type WarehouseOperationError struct {
	Cause error
}

// NewWarehouseOperationError construye el error a partir de la causa original.
func NewWarehouseOperationError(cause error) *WarehouseOperationError {
	return &WarehouseOperationError{Cause: cause}
}

func (e *WarehouseOperationError) Error() string {
	if e.Cause == nil {
		return ErrWarehouseOperationFailed.Error()
	}
	return fmt.Sprintf("%s: %v", ErrWarehouseOperationFailed.Error(), e.Cause)
}

// Is permite errors.Is(err, ErrWarehouseOperationFailed).
func (e *WarehouseOperationError) Is(target error) bool {
	return target == ErrWarehouseOperationFailed
}

func (e *WarehouseOperationError) Unwrap() error { return e.Cause }
