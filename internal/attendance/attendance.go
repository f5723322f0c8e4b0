package attendance

import (
	"time"

	"github.com/danisworo/workdesk/internal"
)

// Record is one attendance span. A record with a NULL check_out is "open":
// the employee is currently checked in. The repository guarantees at most
// one open record per employee.
type Record struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	EmployeeID int64      `json:"employee_id" gorm:"column:employee_id;not null"`
	CheckIn    time.Time  `json:"check_in" gorm:"column:check_in;not null"`
	CheckOut   *time.Time `json:"check_out,omitempty" gorm:"column:check_out"`
	Status     string     `json:"status" gorm:"default:present"`
	CreatedAt  time.Time  `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (Record) TableName() string {
	return "employee_attendance"
}

type Repository interface {
	// CheckIn opens a record iff no open record exists for the employee.
	// Must be a single conditional write so concurrent check-ins cannot
	// both succeed.
	CheckIn(employeeID int64, at time.Time) (*Record, error)
	// CheckOut closes the open record iff one exists.
	CheckOut(employeeID int64, at time.Time) (*Record, error)
	ListByEmployee(employeeID int64, limit int) ([]*Record, error)
	OpenRecord(employeeID int64) (*Record, error)
}

var (
	ErrAlreadyCheckedIn = internal.NewConflictError("Already checked in", internal.ErrCodeAlreadyCheckedIn)
	ErrNotCheckedIn     = internal.NewConflictError("No open attendance record to check out", internal.ErrCodeNotCheckedIn)
)
