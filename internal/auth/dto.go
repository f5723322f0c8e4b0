package auth

import (
	"strings"

	"github.com/danisworo/workdesk/internal"
)

// LoginDTO is the transport shape for login requests. Role is the claimed
// role selected on the login form, checked against the stored role.
type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=business_admin employee"`
}

type RegisterDTO struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=business_admin employee"`
	JobTitle string `json:"jobTitle" validate:"max=100"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// NormalizedEmail lowercases and trims the email so lookups and the
// uniqueness check are case-insensitive.
func NormalizedEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (d LoginDTO) Validate() error {
	if d.Email == "" || d.Password == "" {
		return internal.NewValidationError("Email and password are required", internal.ErrCodeValidationFailed)
	}
	if d.Role != internal.RoleBusinessAdmin && d.Role != internal.RoleEmployee {
		return internal.NewValidationError("role must be business_admin or employee", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (d ChangePasswordDTO) Validate() error {
	if d.CurrentPassword == "" || d.NewPassword == "" {
		return internal.NewValidationError("Current password and new password are required", internal.ErrCodeValidationFailed)
	}
	if len(d.NewPassword) < 6 {
		return internal.NewValidationError("New password must be at least 6 characters long", internal.ErrCodeWeakPassword)
	}
	return nil
}
