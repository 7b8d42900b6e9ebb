package checkout

// Service orchestrates the checkout write sequence: purchase header,
// line items, pedido, factura. The steps are strictly sequential because
// every step needs the generated id of the one before it. The four inserts
// are not wrapped in a transaction; a failure aborts the remaining steps
// but leaves the earlier rows committed (see DESIGN.md).
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Checkout validates the cart and performs the four dependent writes.
// It returns ErrInvalidCart before touching storage, or a *StageError
// naming the first write that failed.
func (s *Service) Checkout(cart []CartItem, userID int) (Result, error) {
	if len(cart) == 0 {
		return Result{}, ErrInvalidCart
	}

	purchaseID, err := s.repo.CreatePurchase(userID)
	if err != nil {
		return Result{}, &StageError{Stage: StagePurchase, Err: err}
	}

	if err := s.repo.CreatePurchaseLines(purchaseID, cart); err != nil {
		// the compras row stays behind without lines; no compensation exists
		return Result{}, &StageError{Stage: StageLines, Err: err}
	}

	// the pedido is derived from the first cart item only; a multi-item
	// cart still bills the full total through the factura
	orderID, err := s.repo.CreateOrder(cart[0])
	if err != nil {
		return Result{}, &StageError{Stage: StageOrder, Err: err}
	}

	// the factura bills the whole cart, not just the pedido's item
	if err := s.repo.CreateInvoice(orderID, CartTotal(cart)); err != nil {
		return Result{}, &StageError{Stage: StageInvoice, Err: err}
	}

	return Result{PurchaseID: purchaseID, OrderID: orderID, Mensaje: SuccessMessage}, nil
}
