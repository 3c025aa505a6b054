package dto

import "time"

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	Product string `json:"product"`
	Amount  int    `json:"amount"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID        string     `json:"id"`
	Product   string     `json:"product"`
	Amount    int        `json:"amount"`
	Filled    bool       `json:"filled"`
	CreatedAt time.Time  `json:"created_at"`
	FilledAt  *time.Time `json:"filled_at,omitempty"`
}

// OrderListResponse lista de órdenes en orden de creación.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// CanFillResponse resultado orientativo de GET /api/orders/:id/can-fill (no reserva stock).
type CanFillResponse struct {
	OrderID string `json:"order_id"`
	CanFill bool   `json:"can_fill"`
}
