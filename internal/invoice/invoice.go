package invoice

import "errors"

// Invoice is a facturas row joined with the pedido it bills.
type Invoice struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"pedido_id"`
	Total     float64 `json:"total"`
	ProductID int     `json:"producto_id"`
	Cantidad  int     `json:"cantidad"`
}

var ErrNotFound = errors.New("factura no encontrada")
