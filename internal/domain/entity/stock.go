package entity

// Stock representa las unidades de un producto en una bodega (fila del snapshot).
type Stock struct {
	Product  string
	Quantity int
}
