package user

import "time"

// User is the profile view of an account, re-read from the store rather than
// echoed from the client-visible cookie.
type User struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Role                string    `json:"role"`
	JobTitle            string    `json:"jobTitle"`
	EmployeeRole        *string   `json:"employeeRole,omitempty"`
	IsActive            bool      `json:"isActive"`
	IsPasswordTemporary bool      `json:"isPasswordTemporary"`
	CreatedAt           time.Time `json:"createdAt"`
}
