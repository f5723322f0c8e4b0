package postgres

import (
	"errors"

	"github.com/danisworo/workdesk/internal/task"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(t *task.Task) error {
	return r.db.Create(t).Error
}

func (r *TaskRepository) GetByID(id int64) (*task.Task, error) {
	var t task.Task
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) List(filter task.ListFilter) ([]*task.Task, error) {
	query := r.db.Order("created_at DESC")
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}

	var tasks []*task.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

// Update persists the full row, including explicit NULLs for cleared fields
// such as completed_at after a backward status move.
func (r *TaskRepository) Update(t *task.Task) error {
	return r.db.Model(&task.Task{}).
		Where("id = ?", t.ID).
		Select("title", "description", "status", "priority", "due_date", "completed_at", "updated_at").
		Updates(map[string]interface{}{
			"title":        t.Title,
			"description":  t.Description,
			"status":       t.Status,
			"priority":     t.Priority,
			"due_date":     t.DueDate,
			"completed_at": t.CompletedAt,
			"updated_at":   t.UpdatedAt,
		}).Error
}

func (r *TaskRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&task.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
