package employee

// CreateEmployeeDTO is the admin request to add an employee. A temporary
// password is generated server-side and returned once.
type CreateEmployeeDTO struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	JobTitle   string `json:"jobTitle" validate:"max=100"`
	Role       string `json:"role" validate:"omitempty,oneof=engineer doctor sales"`
	Department string `json:"department" validate:"max=100"`
}

type SetActiveDTO struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// CreatedEmployee is the response shape for a newly provisioned employee.
type CreatedEmployee struct {
	Employee     *Employee `json:"employee"`
	TempPassword string    `json:"tempPassword"`
}
