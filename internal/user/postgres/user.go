package postgres

import (
	"errors"

	"github.com/danisworo/workdesk/internal/auth"
	"github.com/danisworo/workdesk/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(accountID int64) (*user.User, error) {
	var account auth.Account
	if err := r.db.Where("id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}

	return &user.User{
		ID:                  account.ID,
		Name:                account.Name,
		Email:               account.Email,
		Role:                account.Role,
		JobTitle:            account.JobTitle,
		EmployeeRole:        account.EmployeeRole,
		IsActive:            account.IsActive,
		IsPasswordTemporary: account.IsPasswordTemporary,
		CreatedAt:           account.CreatedAt,
	}, nil
}
