package auth

import (
	"time"

	"github.com/danisworo/workdesk/internal"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Account is the login-capable identity stored in the users table. Employees
// are never hard-deleted; deactivation flips is_active.
type Account struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"not null"`
	Email               string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash        string    `json:"-" gorm:"column:password_hash;not null"`
	Role                string    `json:"role" gorm:"not null"`
	JobTitle            string    `json:"job_title" gorm:"column:job_title"`
	EmployeeRole        *string   `json:"employee_role,omitempty" gorm:"column:employee_role"`
	IsActive            bool      `json:"is_active" gorm:"column:is_active;default:true"`
	IsPasswordTemporary bool      `json:"is_password_temporary" gorm:"column:is_password_temporary;default:false"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Account) TableName() string {
	return "users"
}

// Profile is the client-visible mirror of an account, delivered in the
// user_session cookie and returned from login. Field names match what the
// dashboards expect.
type Profile struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	JobTitle            string `json:"jobTitle"`
	IsActive            bool   `json:"isActive"`
	IsPasswordTemporary bool   `json:"isPasswordTemporary"`
}

func (a *Account) ToProfile() Profile {
	return Profile{
		ID:                  a.ID,
		Name:                a.Name,
		Email:               a.Email,
		Role:                a.Role,
		JobTitle:            a.JobTitle,
		IsActive:            a.IsActive,
		IsPasswordTemporary: a.IsPasswordTemporary,
	}
}

func (a *Account) ToContext() *internal.AccountContext {
	employeeRole := ""
	if a.EmployeeRole != nil {
		employeeRole = *a.EmployeeRole
	}
	return &internal.AccountContext{
		ID:                  a.ID,
		Name:                a.Name,
		Email:               a.Email,
		Role:                a.Role,
		JobTitle:            a.JobTitle,
		EmployeeRole:        employeeRole,
		IsActive:            a.IsActive,
		IsPasswordTemporary: a.IsPasswordTemporary,
	}
}

// Claims represents the session token claims.
type Claims struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

type ServiceAPI interface {
	Login(dto LoginDTO) (string, *Profile, error)
	Register(dto RegisterDTO) (*Account, error)
	ChangePassword(accountID int64, dto ChangePasswordDTO) (*Profile, error)
	Authorize(token string) (*internal.AccountContext, error)
	SessionTTL() time.Duration
}

type RepositoryAPI interface {
	GetByEmail(email string) (*Account, error)
	GetByID(id int64) (*Account, error)
	Create(account *Account) error
	UpdatePassword(id int64, passwordHash string, temporary bool) error
	SetActive(id int64, active bool) error
}

type TokenGeneratorAPI interface {
	GenerateSessionToken(accountID int64, email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Domain errors, mapped straight onto the HTTP taxonomy.
var (
	ErrInvalidCredentials = internal.NewUnauthenticatedError("Invalid credentials", internal.ErrCodeInvalidCredentials)
	ErrDeactivated        = internal.NewForbiddenError("Your account has been deactivated. Please contact your administrator.", internal.ErrCodeAccountDeactivated)
	ErrUnauthenticated    = internal.NewUnauthenticatedError("Authentication required", internal.ErrCodeInvalidToken)
	ErrTokenExpired       = internal.NewUnauthenticatedError("Token has expired", internal.ErrCodeTokenExpired)
	ErrAccountGone        = internal.NewUnauthenticatedError("Account no longer exists", internal.ErrCodeAccountGone)
	ErrAccountNotFound    = internal.NewNotFoundError("Account not found", internal.ErrCodeAccountNotFound)
	ErrEmailTaken         = internal.NewConflictError("User with this email already exists", internal.ErrCodeDuplicateEmail)
)

// RoleMismatchError mirrors the original login message verbatim.
func RoleMismatchError(claimedRole string) *internal.AppError {
	return internal.NewForbiddenError("You don't have access as a "+claimedRole, internal.ErrCodeRoleMismatch)
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
