package project

import (
	"log/slog"
	"time"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(createdBy int64, dto CreateProjectDTO) (*Project, error) {
	status := dto.Status
	if status == "" {
		status = StatusWorking
	}

	p := &Project{
		Name:       dto.Name,
		Budget:     dto.Budget,
		Status:     status,
		Completion: dto.Completion,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create project", "error", err, "created_by", createdBy)
		return nil, err
	}

	s.logger.Info("project created", "project_id", p.ID, "name", p.Name)
	return p, nil
}

func (s *Service) GetByID(id int64) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	return p, nil
}

func (s *Service) List() ([]*Project, error) {
	projects, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		return nil, err
	}
	return projects, nil
}

// Update applies a partial update. A project marked Done keeps whatever
// completion value it has; the dashboards show both fields independently.
func (s *Service) Update(id int64, dto UpdateProjectDTO) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Budget != nil {
		p.Budget = *dto.Budget
	}
	if dto.Completion != nil {
		p.Completion = *dto.Completion
	}
	if dto.Status != nil {
		p.Status = *dto.Status
	}

	p.UpdatedAt = time.Now()
	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update project", "error", err, "project_id", id)
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("project deleted", "project_id", id)
	return nil
}
