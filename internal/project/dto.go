package project

type CreateProjectDTO struct {
	Name       string `json:"name" validate:"required,max=200"`
	Budget     int64  `json:"budget" validate:"gte=0"`
	Completion int    `json:"completion" validate:"gte=0,lte=100"`
	Status     string `json:"status" validate:"omitempty,oneof=Working Done Cancelled"`
}

type UpdateProjectDTO struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Budget     *int64  `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Completion *int    `json:"completion,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=Working Done Cancelled"`
}
