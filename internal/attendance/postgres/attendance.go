package postgres

import (
	"errors"
	"time"

	"github.com/danisworo/workdesk/internal/attendance"
	"gorm.io/gorm"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.Repository {
	return &AttendanceRepository{db: db}
}

const statusPresent = "present"

// CheckIn is a single conditional INSERT, not a read-then-write pair: two
// concurrent check-ins race on the same statement and exactly one inserts.
// The partial unique index on (employee_id) WHERE check_out IS NULL backs
// this up at the schema level.
func (r *AttendanceRepository) CheckIn(employeeID int64, at time.Time) (*attendance.Record, error) {
	result := r.db.Exec(`
		INSERT INTO employee_attendance (employee_id, check_in, status, created_at)
		SELECT ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM employee_attendance
			WHERE employee_id = ? AND check_out IS NULL
		)`,
		employeeID, at, statusPresent, at, employeeID)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, attendance.ErrAlreadyCheckedIn
	}

	return r.OpenRecord(employeeID)
}

// CheckOut closes the open record with one conditional UPDATE; zero affected
// rows means there was nothing open.
func (r *AttendanceRepository) CheckOut(employeeID int64, at time.Time) (*attendance.Record, error) {
	result := r.db.Exec(`
		UPDATE employee_attendance
		SET check_out = ?
		WHERE employee_id = ? AND check_out IS NULL`,
		at, employeeID)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, attendance.ErrNotCheckedIn
	}

	var record attendance.Record
	err := r.db.Where("employee_id = ? AND check_out IS NOT NULL", employeeID).
		Order("check_in DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) ListByEmployee(employeeID int64, limit int) ([]*attendance.Record, error) {
	var records []*attendance.Record
	err := r.db.Where("employee_id = ?", employeeID).
		Order("check_in DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// OpenRecord returns the currently open record, or nil when checked out.
func (r *AttendanceRepository) OpenRecord(employeeID int64) (*attendance.Record, error) {
	var record attendance.Record
	err := r.db.Where("employee_id = ? AND check_out IS NULL", employeeID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
