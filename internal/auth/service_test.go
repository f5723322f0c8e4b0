package auth

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/danisworo/workdesk/internal"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func lower(s string) string {
	return strings.ToLower(s)
}

type mockRepository struct {
	accountsByEmail map[string]*Account
	accountsByID    map[int64]*Account
	nextID          int64
	returnError     bool
	errorToReturn   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		accountsByEmail: make(map[string]*Account),
		accountsByID:    make(map[int64]*Account),
		nextID:          1,
	}
}

func (m *mockRepository) addAccount(account *Account, password string) *Account {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	account.PasswordHash = string(hash)
	if account.ID == 0 {
		account.ID = m.nextID
		m.nextID++
	}
	m.accountsByEmail[account.Email] = account
	m.accountsByID[account.ID] = account
	return account
}

func (m *mockRepository) GetByEmail(email string) (*Account, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if account, ok := m.accountsByEmail[email]; ok {
		return account, nil
	}
	return nil, errors.New("account not found")
}

func (m *mockRepository) GetByID(id int64) (*Account, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if account, ok := m.accountsByID[id]; ok {
		return account, nil
	}
	return nil, errors.New("account not found")
}

func (m *mockRepository) Create(account *Account) error {
	if m.returnError {
		return m.errorToReturn
	}
	if _, exists := m.accountsByEmail[account.Email]; exists {
		return ErrEmailTaken
	}
	account.ID = m.nextID
	m.nextID++
	m.accountsByEmail[account.Email] = account
	m.accountsByID[account.ID] = account
	return nil
}

func (m *mockRepository) UpdatePassword(id int64, passwordHash string, temporary bool) error {
	account, ok := m.accountsByID[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.PasswordHash = passwordHash
	account.IsPasswordTemporary = temporary
	return nil
}

func (m *mockRepository) SetActive(id int64, active bool) error {
	account, ok := m.accountsByID[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.IsActive = active
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
		tokenGen *JWTTokenGenerator
	)

	sessionSecret := "test-session-secret-at-least-32-chars!!"
	sessionTTL := time.Hour

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		tokenGen = NewJWTTokenGenerator(sessionSecret, sessionTTL)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, newTestLogger())

		mockRepo.addAccount(&Account{
			Name:     "Owner",
			Email:    "admin@example.com",
			Role:     internal.RoleBusinessAdmin,
			JobTitle: "Owner",
			IsActive: true,
		}, "admin_password")

		mockRepo.addAccount(&Account{
			Name:     "Worker",
			Email:    "worker@example.com",
			Role:     internal.RoleEmployee,
			IsActive: true,
		}, "worker_password")
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("returns a token and profile for valid credentials", func() {
			token, profile, err := service.Login(LoginDTO{
				Email:    "admin@example.com",
				Password: "admin_password",
				Role:     internal.RoleBusinessAdmin,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(token).ToNot(gomega.BeEmpty())
			gomega.Expect(profile.Email).To(gomega.Equal("admin@example.com"))
			gomega.Expect(profile.Role).To(gomega.Equal(internal.RoleBusinessAdmin))
		})

		ginkgo.It("normalizes the email before lookup", func() {
			token, _, err := service.Login(LoginDTO{
				Email:    "  Admin@Example.COM ",
				Password: "admin_password",
				Role:     internal.RoleBusinessAdmin,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(token).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("rejects an unknown email with invalid credentials", func() {
			_, _, err := service.Login(LoginDTO{
				Email:    "nobody@example.com",
				Password: "whatever",
				Role:     internal.RoleEmployee,
			})

			gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
		})

		ginkgo.It("rejects a wrong password with invalid credentials", func() {
			_, _, err := service.Login(LoginDTO{
				Email:    "worker@example.com",
				Password: "wrong_password",
				Role:     internal.RoleEmployee,
			})

			gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
		})

		ginkgo.It("reports a role mismatch, never invalid credentials, even with a correct password", func() {
			_, _, err := service.Login(LoginDTO{
				Email:    "worker@example.com",
				Password: "worker_password",
				Role:     internal.RoleBusinessAdmin,
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeRoleMismatch))
			gomega.Expect(appErr.Message).To(gomega.ContainSubstring("business_admin"))
		})

		ginkgo.It("reports deactivation before checking the password", func() {
			mockRepo.accountsByEmail["worker@example.com"].IsActive = false

			_, _, err := service.Login(LoginDTO{
				Email:    "worker@example.com",
				Password: "definitely_wrong",
				Role:     internal.RoleEmployee,
			})

			gomega.Expect(err).To(gomega.Equal(ErrDeactivated))
		})

		ginkgo.It("does not block a deactivated business admin", func() {
			mockRepo.accountsByEmail["admin@example.com"].IsActive = false

			token, _, err := service.Login(LoginDTO{
				Email:    "admin@example.com",
				Password: "admin_password",
				Role:     internal.RoleBusinessAdmin,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(token).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("rejects an invalid claimed role", func() {
			_, _, err := service.Login(LoginDTO{
				Email:    "worker@example.com",
				Password: "worker_password",
				Role:     "superuser",
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("creates an active account with a hashed password", func() {
			account, err := service.Register(RegisterDTO{
				Name:     "New Admin",
				Email:    "new@example.com",
				Password: "secret123",
				Role:     internal.RoleBusinessAdmin,
				JobTitle: "Manager",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(account.ID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(account.IsActive).To(gomega.BeTrue())
			gomega.Expect(account.PasswordHash).ToNot(gomega.Equal("secret123"))
			gomega.Expect(VerifyPassword(account.PasswordHash, "secret123")).To(gomega.Succeed())
		})

		ginkgo.It("rejects a duplicate email regardless of case", func() {
			_, err := service.Register(RegisterDTO{
				Name:     "Duplicate",
				Email:    "Admin@Example.com",
				Password: "secret123",
				Role:     internal.RoleBusinessAdmin,
			})

			gomega.Expect(err).To(gomega.Equal(ErrEmailTaken))
		})
	})

	ginkgo.Describe("ChangePassword", func() {
		ginkgo.It("rejects a wrong current password", func() {
			worker := mockRepo.accountsByEmail["worker@example.com"]

			_, err := service.ChangePassword(worker.ID, ChangePasswordDTO{
				CurrentPassword: "wrong",
				NewPassword:     "new_password",
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(401))
		})

		ginkgo.It("rejects a short new password", func() {
			worker := mockRepo.accountsByEmail["worker@example.com"]

			_, err := service.ChangePassword(worker.ID, ChangePasswordDTO{
				CurrentPassword: "worker_password",
				NewPassword:     "short",
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeWeakPassword))
		})

		ginkgo.It("re-hashes the password and clears the temporary flag", func() {
			worker := mockRepo.accountsByEmail["worker@example.com"]
			worker.IsPasswordTemporary = true

			profile, err := service.ChangePassword(worker.ID, ChangePasswordDTO{
				CurrentPassword: "worker_password",
				NewPassword:     "brand_new_password",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(profile.IsPasswordTemporary).To(gomega.BeFalse())
			gomega.Expect(worker.IsPasswordTemporary).To(gomega.BeFalse())
			gomega.Expect(VerifyPassword(worker.PasswordHash, "brand_new_password")).To(gomega.Succeed())
		})
	})

	ginkgo.Describe("Authorize", func() {
		var workerToken string

		ginkgo.BeforeEach(func() {
			var err error
			workerToken, _, err = service.Login(LoginDTO{
				Email:    "worker@example.com",
				Password: "worker_password",
				Role:     internal.RoleEmployee,
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("returns the account context for a valid token", func() {
			ctx, err := service.Authorize(workerToken)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(ctx.Email).To(gomega.Equal("worker@example.com"))
			gomega.Expect(ctx.IsEmployee()).To(gomega.BeTrue())
		})

		ginkgo.It("rejects a garbage token", func() {
			_, err := service.Authorize("not-a-jwt")

			gomega.Expect(err).To(gomega.Equal(ErrUnauthenticated))
		})

		ginkgo.It("rejects a valid token whose account no longer exists", func() {
			worker := mockRepo.accountsByEmail["worker@example.com"]
			delete(mockRepo.accountsByID, worker.ID)
			delete(mockRepo.accountsByEmail, worker.Email)

			_, err := service.Authorize(workerToken)

			gomega.Expect(err).To(gomega.Equal(ErrAccountGone))
		})

		ginkgo.It("rejects a valid token after a mid-session deactivation", func() {
			mockRepo.accountsByEmail["worker@example.com"].IsActive = false

			_, err := service.Authorize(workerToken)

			gomega.Expect(err).To(gomega.Equal(ErrDeactivated))
		})

		ginkgo.It("rejects an expired token with the expiry error", func() {
			expiredGen := NewJWTTokenGenerator(sessionSecret, -time.Minute)
			worker := mockRepo.accountsByEmail["worker@example.com"]
			expiredToken, err := expiredGen.GenerateSessionToken(worker.ID, worker.Email)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Authorize(expiredToken)

			gomega.Expect(err).To(gomega.Equal(ErrTokenExpired))
		})
	})

	ginkgo.Describe("ProvisionEmployeeAccount", func() {
		ginkgo.It("creates an employee account with a one-time temporary password", func() {
			account, tempPassword, err := service.ProvisionEmployeeAccount("New Hire", "hire@example.com", "Engineer", "engineer")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(tempPassword).To(gomega.HaveLen(8))
			gomega.Expect(account.Role).To(gomega.Equal(internal.RoleEmployee))
			gomega.Expect(account.IsPasswordTemporary).To(gomega.BeTrue())
			gomega.Expect(account.IsActive).To(gomega.BeTrue())
			gomega.Expect(*account.EmployeeRole).To(gomega.Equal("engineer"))
			gomega.Expect(VerifyPassword(account.PasswordHash, tempPassword)).To(gomega.Succeed())
		})

		ginkgo.It("lets the employee log in with the temporary password", func() {
			_, tempPassword, err := service.ProvisionEmployeeAccount("New Hire", "hire@example.com", "Engineer", "engineer")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, profile, err := service.Login(LoginDTO{
				Email:    "hire@example.com",
				Password: tempPassword,
				Role:     internal.RoleEmployee,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(profile.IsPasswordTemporary).To(gomega.BeTrue())
		})

		ginkgo.It("propagates the duplicate email conflict", func() {
			_, _, err := service.ProvisionEmployeeAccount("Clash", "worker@example.com", "Engineer", "engineer")

			gomega.Expect(err).To(gomega.Equal(ErrEmailTaken))
		})
	})

	ginkgo.Describe("GenerateTempPassword", func() {
		ginkgo.It("produces distinct 8-character lowercase passwords", func() {
			first, err := GenerateTempPassword()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			second, err := GenerateTempPassword()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(first).To(gomega.HaveLen(8))
			gomega.Expect(first).To(gomega.Equal(lower(first)))
			gomega.Expect(first).ToNot(gomega.Equal(second))
		})
	})
})
