package checkout

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertPurchaseQuery = `INSERT INTO compras (usuario_id) VALUES ($1) RETURNING id`
	insertOrderQuery    = `INSERT INTO pedidos (producto_id, cantidad, total) VALUES ($1,$2,$3) RETURNING id`
	insertInvoiceQuery  = `INSERT INTO facturas (pedido_id, total) VALUES ($1,$2)`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreatePurchase(userID int) (int, error) {
	var id int
	if err := r.db.QueryRow(insertPurchaseQuery, userID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) CreatePurchaseLines(purchaseID int, items []CartItem) error {
	values := make([]string, 0, len(items))
	args := make([]interface{}, 0, len(items)*4)
	for i, it := range items {
		n := i * 4
		values = append(values, fmt.Sprintf("($%d,$%d,$%d,$%d)", n+1, n+2, n+3, n+4))
		args = append(args, purchaseID, it.ID, it.Cantidad, it.Precio)
	}

	query := `INSERT INTO detalle_compras (compra_id, producto_id, cantidad, precio_unitario) VALUES ` +
		strings.Join(values, ", ")
	_, err := r.db.Exec(query, args...)
	return err
}

func (r *PostgresRepository) CreateOrder(item CartItem) (int, error) {
	var id int
	if err := r.db.QueryRow(insertOrderQuery, item.ID, item.Cantidad, item.Subtotal()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) CreateInvoice(orderID int, total decimal.Decimal) error {
	_, err := r.db.Exec(insertInvoiceQuery, orderID, total)
	return err
}
