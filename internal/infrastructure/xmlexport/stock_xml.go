// Package xmlexport serializa y lee el stock de una bodega en XML:
//
//	<StockReport warehouse="main" generatedAt="2026-01-02T15:04:05Z">
//	  <Item product="Cherry" quantity="9000"/>
//	</StockReport>
//
// La exportación se canonicaliza (C14N) para que el mismo stock produzca los mismos bytes.
package xmlexport

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
)

const (
	RootTag = "StockReport"
	ItemTag = "Item"
)

var _ inventory.StockXMLExporter = (*StockXML)(nil)

// StockXML implementa inventory.StockXMLExporter.
type StockXML struct{}

// NewStockXML crea el exportador.
func NewStockXML() *StockXML { return &StockXML{} }

// ExportStockXML arma el documento con etree y devuelve su forma canónica.
func (x *StockXML) ExportStockXML(
	_ context.Context,
	warehouseID string,
	items []entity.Stock,
	generatedAt time.Time,
) ([]byte, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement(RootTag)
	root.CreateAttr("warehouse", warehouseID)
	root.CreateAttr("generatedAt", generatedAt.UTC().Format(time.RFC3339))
	for _, s := range items {
		item := root.CreateElement(ItemTag)
		item.CreateAttr("product", s.Product)
		item.CreateAttr("quantity", strconv.Itoa(s.Quantity))
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	canonical, err := canonicalize(raw)
	if err != nil {
		return nil, fmt.Errorf("xmlexport: canonicalizar: %w", err)
	}
	return canonical, nil
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

// ── Lectura ───────────────────────────────────────────────────────────────────

type stockReport struct {
	XMLName   xml.Name `xml:"StockReport"`
	Warehouse string   `xml:"warehouse,attr"`
	Items     []struct {
		Product  string `xml:"product,attr"`
		Quantity string `xml:"quantity,attr"`
	} `xml:"Item"`
}

// Report contenido de un archivo de stock ya validado.
type Report struct {
	WarehouseID string
	Items       []entity.Stock
}

// ParseStockXML lee un StockReport; acepta archivos declarados en ISO-8859-1.
// Los productos repetidos se conservan en orden para que el llamador los sume.
func ParseStockXML(r io.Reader) (*Report, error) {
	var doc stockReport
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("xmlexport: decodificar: %w", err)
	}

	out := &Report{WarehouseID: strings.TrimSpace(doc.Warehouse), Items: make([]entity.Stock, 0, len(doc.Items))}
	for i, it := range doc.Items {
		qty, err := strconv.Atoi(strings.TrimSpace(it.Quantity))
		if err != nil {
			return nil, fmt.Errorf("xmlexport: item %d (%q): cantidad inválida: %w", i+1, it.Product, err)
		}
		out.Items = append(out.Items, entity.Stock{Product: it.Product, Quantity: qty})
	}
	return out, nil
}
