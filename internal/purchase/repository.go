package purchase

// Repository defines read access to past purchases.
type Repository interface {
	// ListByUser returns all purchases of a user, newest first, each with
	// its lines attached. A user without purchases gets an empty slice.
	ListByUser(userID int) ([]Purchase, error)
}
