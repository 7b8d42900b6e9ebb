package purchase

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) ListByUser(userID int) ([]Purchase, error) {
	return s.repo.ListByUser(userID)
}
