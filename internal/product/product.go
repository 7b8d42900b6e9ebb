package product

// Product represents a catalog item and maps to the `productos` table.
// JSON tags follow the Spanish column names the frontend already consumes.
type Product struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio"`
	Imagen      *string `json:"imagen,omitempty"`
	Stock       int     `json:"stock"`
}
