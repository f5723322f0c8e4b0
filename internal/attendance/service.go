package attendance

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

func (s *Service) CheckIn(employeeID int64) (*Record, error) {
	record, err := s.repo.CheckIn(employeeID, time.Now())
	if err != nil {
		if err == ErrAlreadyCheckedIn {
			s.logger.Warn("check-in rejected: already checked in", "employee_id", employeeID)
		} else {
			s.logger.Error("check-in failed", "error", err, "employee_id", employeeID)
		}
		return nil, err
	}

	s.logger.Info("employee checked in", "employee_id", employeeID, "record_id", record.ID)
	return record, nil
}

func (s *Service) CheckOut(employeeID int64) (*Record, error) {
	record, err := s.repo.CheckOut(employeeID, time.Now())
	if err != nil {
		if err == ErrNotCheckedIn {
			s.logger.Warn("check-out rejected: not checked in", "employee_id", employeeID)
		} else {
			s.logger.Error("check-out failed", "error", err, "employee_id", employeeID)
		}
		return nil, err
	}

	s.logger.Info("employee checked out", "employee_id", employeeID, "record_id", record.ID)
	return record, nil
}

const defaultHistoryLimit = 30

func (s *Service) History(employeeID int64) ([]*Record, error) {
	records, err := s.repo.ListByEmployee(employeeID, defaultHistoryLimit)
	if err != nil {
		s.logger.Error("failed to list attendance", "error", err, "employee_id", employeeID)
		return nil, err
	}
	return records, nil
}

// Current returns the open record, or nil when the employee is checked out.
func (s *Service) Current(employeeID int64) (*Record, error) {
	record, err := s.repo.OpenRecord(employeeID)
	if err != nil {
		return nil, err
	}
	return record, nil
}
