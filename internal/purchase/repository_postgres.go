package purchase

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listPurchasesQuery = `
		SELECT id, usuario_id, COALESCE(created_at::text, '')
		FROM compras
		WHERE usuario_id = $1
		ORDER BY id DESC
	`
	listLinesQuery = `
		SELECT compra_id, producto_id, cantidad, precio_unitario
		FROM detalle_compras
		WHERE compra_id = ANY($1::int[])
		ORDER BY id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Purchase, error) {
	rows, err := r.db.Query(listPurchasesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchases := make([]Purchase, 0)
	ids := make([]int, 0)
	byID := map[int]int{}
	for rows.Next() {
		var p Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.Creation); err != nil {
			return nil, err
		}
		p.Lines = make([]Line, 0)
		byID[p.ID] = len(purchases)
		purchases = append(purchases, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return purchases, nil
	}

	// one batch fetch for all line rows instead of a query per purchase
	lineRows, err := r.db.Query(listLinesQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var l Line
		if err := lineRows.Scan(&l.PurchaseID, &l.ProductID, &l.Cantidad, &l.PrecioUnitario); err != nil {
			return nil, err
		}
		if i, ok := byID[l.PurchaseID]; ok {
			purchases[i].Lines = append(purchases[i].Lines, l)
		}
	}
	return purchases, lineRows.Err()
}
