package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
	"github.com/jhoicas/warehouse-manager/pkg/logger"
)

func TestLoadItems_LogueaCadaRechazo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "error", Out: &buf})
	wh := entity.NewWarehouse()
	stockUC := inventory.NewStockUseCase("main", wh, logger.Nop())

	loaded, rejected := loadItems(stockUC, []entity.Stock{
		{Product: "Cherry", Quantity: 9000},
		{Product: "Apple", Quantity: -3},
		{Product: " ", Quantity: 1},
	}, log)

	assert.Equal(t, 1, loaded)
	assert.Equal(t, 2, rejected)
	assert.Contains(t, buf.String(), `"product":"Apple"`)
	assert.Contains(t, buf.String(), `"item":3`)
	assert.Contains(t, buf.String(), "item rechazado")

	qty, err := wh.CurrentStock("Cherry")
	assert.NoError(t, err)
	assert.Equal(t, 9000, qty)
}
