package task

import "time"

type CreateTaskDTO struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"required,max=2000"`
	AssignedTo  int64      `json:"assignedTo" validate:"required"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskDTO carries a partial update; nil fields are left untouched.
type UpdateTaskDTO struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}
