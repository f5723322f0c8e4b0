package postgres_test

import (
	"testing"
	"time"

	"github.com/danisworo/workdesk/internal/auth"
	authPostgres "github.com/danisworo/workdesk/internal/auth/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAuthPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Postgres Suite")
}

// SQLiteAccount mirrors the users table for in-memory tests.
type SQLiteAccount struct {
	ID                  int64     `gorm:"primaryKey"`
	Name                string    `gorm:"column:name;not null"`
	Email               string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash        string    `gorm:"column:password_hash;not null"`
	Role                string    `gorm:"column:role"`
	JobTitle            string    `gorm:"column:job_title"`
	EmployeeRole        *string   `gorm:"column:employee_role"`
	IsActive            bool      `gorm:"column:is_active;default:true"`
	IsPasswordTemporary bool      `gorm:"column:is_password_temporary;default:false"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (SQLiteAccount) TableName() string {
	return "users"
}

var _ = Describe("Auth Repository", func() {
	var (
		db   *gorm.DB
		repo *authPostgres.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteAccount{})
		Expect(err).NotTo(HaveOccurred())

		repo = authPostgres.NewRepository(db)
	})

	newAccount := func(email string) *auth.Account {
		return &auth.Account{
			Name:         "Test User",
			Email:        email,
			PasswordHash: "hash",
			Role:         "employee",
			IsActive:     true,
		}
	}

	Describe("Create", func() {
		It("creates an account", func() {
			account := newAccount("user@example.com")

			err := repo.Create(account)

			Expect(err).NotTo(HaveOccurred())
			Expect(account.ID).To(BeNumerically(">", 0))
		})

		It("rejects a duplicate email regardless of case", func() {
			Expect(repo.Create(newAccount("user@example.com"))).To(Succeed())

			err := repo.Create(newAccount("User@Example.COM"))

			Expect(err).To(Equal(auth.ErrEmailTaken))
		})
	})

	Describe("GetByEmail", func() {
		It("finds the account case-insensitively", func() {
			Expect(repo.Create(newAccount("user@example.com"))).To(Succeed())

			account, err := repo.GetByEmail("USER@example.com")

			Expect(err).NotTo(HaveOccurred())
			Expect(account.Email).To(Equal("user@example.com"))
		})

		It("returns not found for an unknown email", func() {
			_, err := repo.GetByEmail("nobody@example.com")
			Expect(err).To(Equal(auth.ErrAccountNotFound))
		})
	})

	Describe("UpdatePassword", func() {
		It("replaces the hash and the temporary flag", func() {
			account := newAccount("user@example.com")
			account.IsPasswordTemporary = true
			Expect(repo.Create(account)).To(Succeed())

			err := repo.UpdatePassword(account.ID, "new-hash", false)

			Expect(err).NotTo(HaveOccurred())
			stored, err := repo.GetByID(account.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.PasswordHash).To(Equal("new-hash"))
			Expect(stored.IsPasswordTemporary).To(BeFalse())
		})

		It("returns not found for an unknown account", func() {
			err := repo.UpdatePassword(999, "hash", false)
			Expect(err).To(Equal(auth.ErrAccountNotFound))
		})
	})

	Describe("SetActive", func() {
		It("flips the flag without touching the row otherwise", func() {
			account := newAccount("user@example.com")
			Expect(repo.Create(account)).To(Succeed())

			Expect(repo.SetActive(account.ID, false)).To(Succeed())

			stored, err := repo.GetByID(account.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.IsActive).To(BeFalse())
			Expect(stored.PasswordHash).To(Equal("hash"))
		})
	})
})
