package invoice

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const getInvoiceQuery = `
	SELECT f.id, f.pedido_id, f.total, p.producto_id, p.cantidad
	FROM facturas f
	JOIN pedidos p ON p.id = f.pedido_id
	WHERE f.id = $1
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (Invoice, error) {
	var inv Invoice
	err := r.db.QueryRow(getInvoiceQuery, id).
		Scan(&inv.ID, &inv.OrderID, &inv.Total, &inv.ProductID, &inv.Cantidad)
	if err == sql.ErrNoRows {
		return Invoice{}, ErrNotFound
	}
	if err != nil {
		return Invoice{}, err
	}
	return inv, nil
}
