package project

import (
	"time"

	"github.com/danisworo/workdesk/internal"
)

type Project struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Budget     int64     `json:"budget" gorm:"not null"`
	Status     string    `json:"status" gorm:"default:Working"`
	Completion int       `json:"completion" gorm:"default:0"`
	CreatedBy  int64     `json:"created_by" gorm:"column:created_by;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Project) TableName() string {
	return "projects"
}

// Status values match the business dashboard labels.
const (
	StatusWorking   = "Working"
	StatusDone      = "Done"
	StatusCancelled = "Cancelled"
)

type Repository interface {
	Create(project *Project) error
	GetByID(id int64) (*Project, error)
	List() ([]*Project, error)
	Update(project *Project) error
	Delete(id int64) error
}

var ErrProjectNotFound = internal.NewNotFoundError("Project not found", internal.ErrCodeProjectNotFound)
