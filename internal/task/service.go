package task

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

func (s *Service) Create(createdBy int64, dto CreateTaskDTO) (*Task, error) {
	priority := dto.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	t := &Task{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      StatusPending,
		Priority:    priority,
		DueDate:     dto.DueDate,
		AssignedTo:  dto.AssignedTo,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create task", "error", err, "created_by", createdBy)
		return nil, err
	}

	s.logger.Info("task created", "task_id", t.ID, "assigned_to", t.AssignedTo, "created_by", createdBy)
	return t, nil
}

func (s *Service) GetByID(id int64) (*Task, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

func (s *Service) List(filter ListFilter) ([]*Task, error) {
	tasks, err := s.repo.List(filter)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

// Update applies a partial update. Status transitions are deliberately
// permissive: the dashboards set any status directly, including backward
// moves. completed_at is stamped on entry into completed and cleared when a
// task leaves completed again.
func (s *Service) Update(id int64, dto UpdateTaskDTO) (*Task, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	if dto.Title != nil {
		t.Title = *dto.Title
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.Priority != nil {
		t.Priority = *dto.Priority
	}
	if dto.DueDate != nil {
		t.DueDate = dto.DueDate
	}
	if dto.Status != nil && *dto.Status != t.Status {
		previous := t.Status
		t.Status = *dto.Status

		if t.Status == StatusCompleted {
			now := time.Now()
			t.CompletedAt = &now
		} else if previous == StatusCompleted {
			t.CompletedAt = nil
		}

		s.logger.Info("task status changed", "task_id", t.ID, "from", previous, "to", t.Status)
	}

	t.UpdatedAt = time.Now()
	if err := s.repo.Update(t); err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", id)
		return nil, err
	}

	return t, nil
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("task deleted", "task_id", id)
	return nil
}
