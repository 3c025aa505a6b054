package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehouse-manager/internal/application/dto"
	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
)

// StockHandler maneja consultas y movimientos de stock de la bodega (protegido).
type StockHandler struct {
	stock  *inventory.StockUseCase
	report *inventory.ReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stock *inventory.StockUseCase, report *inventory.ReportUseCase) *StockHandler {
	return &StockHandler{stock: stock, report: report}
}

// List godoc
// @Summary      Stock completo de la bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.stock.Snapshot()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Unidades de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product  path  string  true  "Nombre del producto"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{product} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	product, err := productParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto inválido en la ruta"})
	}
	out, err := h.stock.CurrentStock(product)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Registrar entrada de stock
// @Description  Crea el producto si no existía. amount debe ser >= 0.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product  path  string                  true  "Nombre del producto"
// @Param        body     body  dto.StockAmountRequest  true  "amount"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/{product}/add [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	product, amount, errResp := parseMovement(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	out, err := h.stock.AddStock(product, amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Take godoc
// @Summary      Registrar salida de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product  path  string                  true  "Nombre del producto"
// @Param        body     body  dto.StockAmountRequest  true  "amount"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/{product}/take [post]
func (h *StockHandler) Take(c *fiber.Ctx) error {
	product, amount, errResp := parseMovement(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	out, err := h.stock.TakeStock(product, amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) ReportPDF(c *fiber.Ctx) error {
	doc, err := h.report.StockPDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock-`+h.stock.WarehouseID()+`.pdf"`)
	return c.Send(doc)
}

// ExportXML godoc
// @Summary      Exportación canónica del stock en XML
// @Tags         stock
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {string}  string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/export.xml [get]
func (h *StockHandler) ExportXML(c *fiber.Ctx) error {
	doc, err := h.report.StockXML(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(doc)
}

func productParam(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("product"))
}

func parseMovement(c *fiber.Ctx) (string, int, *dto.ErrorResponse) {
	product, err := productParam(c)
	if err != nil {
		return "", 0, &dto.ErrorResponse{Code: "VALIDATION", Message: "producto inválido en la ruta"}
	}
	var in dto.StockAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return "", 0, &dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"}
	}
	if in.Amount == nil {
		return "", 0, &dto.ErrorResponse{Code: "VALIDATION", Message: "amount es requerido"}
	}
	return product, *in.Amount, nil
}
