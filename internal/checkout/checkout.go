package checkout

import (
	"errors"

	"github.com/shopspring/decimal"
)

// CartItem is one entry of the client-submitted cart. It is input only and
// never persisted as such; each entry becomes one detalle_compras row.
// Item fields are not validated individually (the store accepts whatever the
// frontend sends), only the cart as a whole is checked for emptiness.
type CartItem struct {
	ID       int     `json:"id"`
	Cantidad int     `json:"cantidad"`
	Precio   float64 `json:"precio"`
}

// Subtotal returns precio × cantidad for this line.
func (it CartItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(it.Precio).Mul(decimal.NewFromInt(int64(it.Cantidad)))
}

// CartTotal sums the subtotals over the whole cart. The invoice is billed
// from this figure, while the pedido row only reflects the first item.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Result reports a completed checkout. Only Mensaje reaches the client;
// the generated identifiers are exposed for callers and tests.
type Result struct {
	PurchaseID int
	OrderID    int
	Mensaje    string
}

// User-facing messages; the frontend matches on these strings.
const (
	SuccessMessage     = "Compra, pedido y factura generados correctamente"
	InvalidCartMessage = "Carrito vacío o no válido"
)

// ErrInvalidCart rejects an absent or empty cart before any write happens.
var ErrInvalidCart = errors.New("carrito vacío o no válido")

// Stage identifies which of the four sequential writes failed.
type Stage string

const (
	StagePurchase Stage = "compra"
	StageLines    Stage = "detalle"
	StageOrder    Stage = "pedido"
	StageInvoice  Stage = "factura"
)

var stageMessages = map[Stage]string{
	StagePurchase: "Error al registrar la compra",
	StageLines:    "Error al registrar detalles de la compra",
	StageOrder:    "Error al crear pedido para la factura",
	StageInvoice:  "Error al generar la factura",
}

// StageError wraps a data-access failure with the stage it occurred in.
// Earlier writes are never compensated; whatever committed before the
// failing stage stays committed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing message for the failed stage. Internal
// detail stays out of responses and is only logged.
func (e *StageError) Message() string {
	return stageMessages[e.Stage]
}
