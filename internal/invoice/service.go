package invoice

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) GetByID(id int) (Invoice, error) {
	return s.repo.GetByID(id)
}
