package inventory

import (
	"context"
	"fmt"
	"time"
)

// ReportUseCase genera el reporte PDF y la exportación XML del stock.
type ReportUseCase struct {
	warehouseID string
	lister      StockLister
	pdf         StockPDFGenerator
	xml         StockXMLExporter
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(warehouseID string, lister StockLister, pdf StockPDFGenerator, xml StockXMLExporter) *ReportUseCase {
	return &ReportUseCase{warehouseID: warehouseID, lister: lister, pdf: pdf, xml: xml, now: time.Now}
}

// StockPDF devuelve los bytes del PDF con el snapshot actual.
func (uc *ReportUseCase) StockPDF(ctx context.Context) ([]byte, error) {
	items, err := uc.lister.List()
	if err != nil {
		return nil, fmt.Errorf("reporte: listar stock: %w", err)
	}
	return uc.pdf.GenerateStockPDF(ctx, uc.warehouseID, items, uc.now())
}

// StockXML devuelve el snapshot actual como XML canónico.
func (uc *ReportUseCase) StockXML(ctx context.Context) ([]byte, error) {
	items, err := uc.lister.List()
	if err != nil {
		return nil, fmt.Errorf("reporte: listar stock: %w", err)
	}
	return uc.xml.ExportStockXML(ctx, uc.warehouseID, items, uc.now())
}
