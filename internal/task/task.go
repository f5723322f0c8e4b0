package task

import (
	"time"

	"github.com/danisworo/workdesk/internal"
)

type Task struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	Status      string     `json:"status" gorm:"default:pending"`
	Priority    string     `json:"priority" gorm:"default:medium"`
	DueDate     *time.Time `json:"due_date,omitempty" gorm:"column:due_date"`
	AssignedTo  int64      `json:"assigned_to" gorm:"column:assigned_to;not null"`
	CreatedBy   int64      `json:"created_by" gorm:"column:created_by;not null"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"column:completed_at"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Task) TableName() string {
	return "tasks"
}

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ListFilter narrows task queries the way the dashboards do: an employee
// fetches assigned_to=self, an admin fetches created_by=self or everything.
type ListFilter struct {
	AssignedTo *int64
	CreatedBy  *int64
}

type Repository interface {
	Create(task *Task) error
	GetByID(id int64) (*Task, error)
	List(filter ListFilter) ([]*Task, error)
	Update(task *Task) error
	Delete(id int64) error
}

var ErrTaskNotFound = internal.NewNotFoundError("Task not found", internal.ErrCodeTaskNotFound)
