package purchase

// Purchase is a compras header row together with its detalle_compras lines.
type Purchase struct {
	ID       int    `json:"id"`
	UserID   int    `json:"usuario_id"`
	Lines    []Line `json:"lineas"`
	Creation string `json:"creada_en,omitempty"`
}

// Line is one detalle_compras row.
type Line struct {
	PurchaseID     int     `json:"compra_id"`
	ProductID      int     `json:"producto_id"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}
