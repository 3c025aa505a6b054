package inventory

import (
	"fmt"
	"math"
	"strings"

	"github.com/jhoicas/warehouse-manager/internal/domain"
)

// MinOrderAmount cantidad mínima que puede pedir una orden.
const MinOrderAmount = 1

// ValidateProductName rechaza nombres vacíos o compuestos solo por espacios.
// Los nombres se comparan exactos (sensibles a mayúsculas); no se recortan.
func ValidateProductName(product string) error {
	if strings.TrimSpace(product) == "" {
		return fmt.Errorf("%w: el nombre del producto %q no debe estar vacío", domain.ErrInvalidArgument, product)
	}
	return nil
}

// ValidateNonNegative rechaza cantidades negativas de stock.
func ValidateNonNegative(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: la cantidad %d no debe ser negativa", domain.ErrInvalidArgument, amount)
	}
	return nil
}

// CheckAdd rechaza una entrada que haría desbordar el stock del producto.
func CheckAdd(product string, current, amount int) error {
	if amount > math.MaxInt-current {
		return fmt.Errorf("%w: %q tiene %d, sumar %d excede el máximo", domain.ErrInvalidArgument, product, current, amount)
	}
	return nil
}

// ValidateOrderAmount exige al menos MinOrderAmount unidades.
func ValidateOrderAmount(amount int) error {
	if amount < MinOrderAmount {
		return fmt.Errorf("%w: se deben pedir al menos %d unidades, se pidieron %d", domain.ErrInvalidAmount, MinOrderAmount, amount)
	}
	return nil
}

// CheckTake aplica las reglas de TakeStock sobre un producto ya validado por nombre.
// El orden importa y es observable: existencia, suficiencia, negativo.
// Una cantidad negativa sobre un producto existente pasa la suficiencia y la rechaza el último paso.
func CheckTake(product string, exists bool, current, amount int) error {
	if !exists {
		return fmt.Errorf("%w: %q", domain.ErrNoSuchProduct, product)
	}
	if amount > current {
		return fmt.Errorf("%w: %q tiene %d, se pidieron %d", domain.ErrInsufficientStock, product, current, amount)
	}
	return ValidateNonNegative(amount)
}
