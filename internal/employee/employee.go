package employee

import (
	"time"

	"github.com/danisworo/workdesk/internal"
)

// Employee is the business-side directory record, distinct from the login
// account it is linked to through AccountID.
type Employee struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	AccountID  int64     `json:"account_id" gorm:"column:account_id;not null"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"not null"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Status     string    `json:"status" gorm:"default:offline"`
	JoinDate   time.Time `json:"join_date" gorm:"column:join_date"`
	CreatedBy  int64     `json:"created_by" gorm:"column:created_by"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (Employee) TableName() string {
	return "employees"
}

// Presence status is informational only; there is no heartbeat.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

type Repository interface {
	Create(employee *Employee) error
	GetByID(id int64) (*Employee, error)
	List() ([]*Employee, error)
	Delete(id int64) error
}

var ErrEmployeeNotFound = internal.NewNotFoundError("Employee not found", internal.ErrCodeEmployeeNotFound)
