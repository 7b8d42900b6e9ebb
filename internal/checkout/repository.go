package checkout

import "github.com/shopspring/decimal"

// Repository is the persistence gateway for the four checkout writes.
// Each call issues exactly one statement and commits independently; the
// orchestrator relies on the generated identifiers to chain the steps.
type Repository interface {
	// CreatePurchase inserts the compras header row and returns its id.
	CreatePurchase(userID int) (int, error)
	// CreatePurchaseLines inserts one detalle_compras row per cart item
	// as a single batch statement, all referencing purchaseID.
	CreatePurchaseLines(purchaseID int, items []CartItem) error
	// CreateOrder inserts the pedidos row derived from a single cart item
	// and returns its id.
	CreateOrder(item CartItem) (int, error)
	// CreateInvoice inserts the facturas row tied to the pedido.
	CreateInvoice(orderID int, total decimal.Decimal) error
}
