package postgres

import (
	"errors"

	"github.com/danisworo/workdesk/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) List() ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.db.Order("created_at DESC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&employee.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
