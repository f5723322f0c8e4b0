package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/danisworo/workdesk/internal/auth"
	"gorm.io/gorm"
)

// Repository is the credential store backing the session issuer and the
// authorization guard.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(email string) (*auth.Account, error) {
	var account auth.Account
	err := r.db.Where("lower(email) = ?", strings.ToLower(email)).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *Repository) GetByID(id int64) (*auth.Account, error) {
	var account auth.Account
	err := r.db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Create inserts a new account. Email uniqueness is checked case-insensitively
// up front and enforced by the unique index underneath, so a race between two
// registrations still yields exactly one account.
func (r *Repository) Create(account *auth.Account) error {
	var count int64
	if err := r.db.Model(&auth.Account{}).
		Where("lower(email) = ?", strings.ToLower(account.Email)).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return auth.ErrEmailTaken
	}

	if err := r.db.Create(account).Error; err != nil {
		if isDuplicateErr(err) {
			return auth.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repository) UpdatePassword(id int64, passwordHash string, temporary bool) error {
	result := r.db.Model(&auth.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash":         passwordHash,
			"is_password_temporary": temporary,
			"updated_at":            time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return auth.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) SetActive(id int64, active bool) error {
	result := r.db.Model(&auth.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return auth.ErrAccountNotFound
	}
	return nil
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
