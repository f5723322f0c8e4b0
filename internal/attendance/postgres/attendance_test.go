package postgres_test

import (
	"testing"
	"time"

	"github.com/danisworo/workdesk/internal/attendance"
	attendancePostgres "github.com/danisworo/workdesk/internal/attendance/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAttendancePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Postgres Suite")
}

// SQLiteRecord mirrors the production table for in-memory tests.
type SQLiteRecord struct {
	ID         int64      `gorm:"primaryKey"`
	EmployeeID int64      `gorm:"column:employee_id;not null"`
	CheckIn    time.Time  `gorm:"column:check_in;not null"`
	CheckOut   *time.Time `gorm:"column:check_out"`
	Status     string     `gorm:"column:status"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (SQLiteRecord) TableName() string {
	return "employee_attendance"
}

var _ = Describe("Attendance Repository", func() {
	var (
		db   *gorm.DB
		repo attendance.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteRecord{})
		Expect(err).NotTo(HaveOccurred())

		repo = attendancePostgres.NewAttendanceRepository(db)
	})

	Describe("CheckIn", func() {
		It("opens a record when none is open", func() {
			record, err := repo.CheckIn(1, time.Now())

			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(BeNumerically(">", 0))
			Expect(record.EmployeeID).To(Equal(int64(1)))
			Expect(record.CheckOut).To(BeNil())
		})

		It("rejects a second check-in while a record is open", func() {
			_, err := repo.CheckIn(1, time.Now())
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.CheckIn(1, time.Now())
			Expect(err).To(Equal(attendance.ErrAlreadyCheckedIn))

			var count int64
			Expect(db.Model(&SQLiteRecord{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})

		It("keeps employees independent", func() {
			_, err := repo.CheckIn(1, time.Now())
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.CheckIn(2, time.Now())
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("CheckOut", func() {
		It("closes the open record", func() {
			_, err := repo.CheckIn(1, time.Now())
			Expect(err).NotTo(HaveOccurred())

			record, err := repo.CheckOut(1, time.Now())

			Expect(err).NotTo(HaveOccurred())
			Expect(record.CheckOut).NotTo(BeNil())

			open, err := repo.OpenRecord(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(open).To(BeNil())
		})

		It("rejects a check-out with no open record", func() {
			_, err := repo.CheckOut(1, time.Now())
			Expect(err).To(Equal(attendance.ErrNotCheckedIn))
		})

		It("rejects a double check-out", func() {
			_, err := repo.CheckIn(1, time.Now())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.CheckOut(1, time.Now())
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.CheckOut(1, time.Now())
			Expect(err).To(Equal(attendance.ErrNotCheckedIn))
		})

		It("allows a fresh check-in after checking out", func() {
			_, err := repo.CheckIn(1, time.Now())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.CheckOut(1, time.Now())
			Expect(err).NotTo(HaveOccurred())

			record, err := repo.CheckIn(1, time.Now())

			Expect(err).NotTo(HaveOccurred())
			Expect(record.CheckOut).To(BeNil())

			var count int64
			Expect(db.Model(&SQLiteRecord{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(2)))
		})
	})

	Describe("ListByEmployee", func() {
		It("returns records newest first, bounded by the limit", func() {
			base := time.Now().Add(-3 * time.Hour)
			for i := 0; i < 3; i++ {
				_, err := repo.CheckIn(1, base.Add(time.Duration(i)*time.Hour))
				Expect(err).NotTo(HaveOccurred())
				_, err = repo.CheckOut(1, base.Add(time.Duration(i)*time.Hour+30*time.Minute))
				Expect(err).NotTo(HaveOccurred())
			}

			records, err := repo.ListByEmployee(1, 2)

			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].CheckIn.After(records[1].CheckIn)).To(BeTrue())
		})
	})
})
