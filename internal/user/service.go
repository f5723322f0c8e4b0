package user

type Repository interface {
	GetByID(accountID int64) (*User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetByID(accountID int64) (*User, error) {
	return s.repo.GetByID(accountID)
}
