package invoice

// Repository defines read access to invoices.
type Repository interface {
	GetByID(id int) (Invoice, error)
}
