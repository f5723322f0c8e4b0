package employee

import (
	"log/slog"
	"time"

	"github.com/danisworo/workdesk/internal/auth"
)

// AccountProvisioner is the slice of the auth service the employee flow
// needs: creating the login with a temporary password and toggling the
// soft-delete flag.
type AccountProvisioner interface {
	ProvisionEmployeeAccount(name, email, jobTitle, employeeRole string) (*auth.Account, string, error)
	SetAccountActive(accountID int64, active bool) error
}

type Service struct {
	repo     Repository
	accounts AccountProvisioner
	logger   *slog.Logger
}

func NewService(repo Repository, accounts AccountProvisioner, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		logger:   logger,
	}
}

// Create provisions the login account first, then the directory record. The
// two inserts are not transactional: a crash in between leaves an account
// without a directory row, which the admin can re-add without another login.
func (s *Service) Create(createdBy int64, dto CreateEmployeeDTO) (*CreatedEmployee, error) {
	account, tempPassword, err := s.accounts.ProvisionEmployeeAccount(dto.Name, dto.Email, dto.JobTitle, dto.Role)
	if err != nil {
		return nil, err
	}

	emp := &Employee{
		AccountID:  account.ID,
		Name:       dto.Name,
		Email:      account.Email,
		Role:       dto.Role,
		Department: dto.Department,
		Status:     StatusOffline,
		JoinDate:   time.Now(),
		CreatedBy:  createdBy,
	}

	if err := s.repo.Create(emp); err != nil {
		s.logger.Error("failed to create employee record", "error", err, "account_id", account.ID)
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", emp.ID, "account_id", account.ID, "created_by", createdBy)

	return &CreatedEmployee{
		Employee:     emp,
		TempPassword: tempPassword,
	}, nil
}

func (s *Service) List() ([]*Employee, error) {
	employees, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

// SetActive toggles the linked account. Deactivation is effective on the
// employee's next request because the guard re-reads the account.
func (s *Service) SetActive(employeeID int64, active bool) (*Employee, error) {
	emp, err := s.repo.GetByID(employeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	if err := s.accounts.SetAccountActive(emp.AccountID, active); err != nil {
		s.logger.Error("failed to update account active flag", "error", err, "employee_id", employeeID)
		return nil, err
	}

	s.logger.Info("employee active flag updated", "employee_id", employeeID, "is_active", active)
	return emp, nil
}

// Delete removes the directory record and deactivates the login. The account
// row itself is kept; accounts are never hard-deleted.
func (s *Service) Delete(employeeID int64) error {
	emp, err := s.repo.GetByID(employeeID)
	if err != nil {
		return ErrEmployeeNotFound
	}

	if err := s.repo.Delete(employeeID); err != nil {
		s.logger.Error("failed to delete employee record", "error", err, "employee_id", employeeID)
		return err
	}

	if err := s.accounts.SetAccountActive(emp.AccountID, false); err != nil {
		// best-effort: the directory row is already gone; log and continue
		s.logger.Error("failed to deactivate account after employee delete", "error", err, "account_id", emp.AccountID)
	}

	s.logger.Info("employee deleted", "employee_id", employeeID)
	return nil
}
