package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehouse-manager/internal/application/dto"
	"github.com/jhoicas/warehouse-manager/internal/domain"
)

// errorStatus traduce un error de dominio a status HTTP y código de error.
// WarehouseOperationFailed se evalúa primero: su causa también responde a errors.Is.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrWarehouseOperationFailed):
		if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrNoSuchProduct) {
			return fiber.StatusConflict, "WAREHOUSE_OPERATION_FAILED"
		}
		return fiber.StatusBadGateway, "WAREHOUSE_OPERATION_FAILED"
	case errors.Is(err, domain.ErrInvalidArgument):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidAmount):
		return fiber.StatusBadRequest, "INVALID_AMOUNT"
	case errors.Is(err, domain.ErrNoSuchProduct):
		return fiber.StatusNotFound, "NO_SUCH_PRODUCT"
	case errors.Is(err, domain.ErrOrderNotFound):
		return fiber.StatusNotFound, "ORDER_NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrOrderAlreadyFilled):
		return fiber.StatusConflict, "ORDER_ALREADY_FILLED"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
