package dto

// StockAmountRequest body para POST /api/stock/:product/add y /take.
type StockAmountRequest struct {
	Amount *int `json:"amount"`
}

// StockItemResponse unidades de un producto.
type StockItemResponse struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// StockListResponse snapshot completo de la bodega.
type StockListResponse struct {
	WarehouseID string              `json:"warehouse_id"`
	Items       []StockItemResponse `json:"items"`
	Total       int                 `json:"total"`
}
