package employee

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/danisworo/workdesk/internal"
	"github.com/danisworo/workdesk/internal/auth"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestEmployee(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Employee Module Suite")
}

type mockEmployeeRepository struct {
	employees map[int64]*Employee
	nextID    int64
	createErr error
}

func newMockEmployeeRepository() *mockEmployeeRepository {
	return &mockEmployeeRepository{
		employees: make(map[int64]*Employee),
		nextID:    1,
	}
}

func (m *mockEmployeeRepository) Create(e *Employee) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = m.nextID
	m.nextID++
	m.employees[e.ID] = e
	return nil
}

func (m *mockEmployeeRepository) GetByID(id int64) (*Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, errors.New("not found")
}

func (m *mockEmployeeRepository) List() ([]*Employee, error) {
	var out []*Employee
	for _, e := range m.employees {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEmployeeRepository) Delete(id int64) error {
	if _, ok := m.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

type mockProvisioner struct {
	nextAccountID int64
	activeFlags   map[int64]bool
	provisionErr  error
	setActiveErr  error
}

func newMockProvisioner() *mockProvisioner {
	return &mockProvisioner{
		nextAccountID: 100,
		activeFlags:   make(map[int64]bool),
	}
}

func (m *mockProvisioner) ProvisionEmployeeAccount(name, email, jobTitle, employeeRole string) (*auth.Account, string, error) {
	if m.provisionErr != nil {
		return nil, "", m.provisionErr
	}
	id := m.nextAccountID
	m.nextAccountID++
	m.activeFlags[id] = true
	return &auth.Account{
		ID:                  id,
		Name:                name,
		Email:               email,
		Role:                internal.RoleEmployee,
		JobTitle:            jobTitle,
		IsActive:            true,
		IsPasswordTemporary: true,
	}, "temp1234", nil
}

func (m *mockProvisioner) SetAccountActive(accountID int64, active bool) error {
	if m.setActiveErr != nil {
		return m.setActiveErr
	}
	m.activeFlags[accountID] = active
	return nil
}

var _ = ginkgo.Describe("EmployeeService", func() {
	var (
		service     *Service
		repo        *mockEmployeeRepository
		provisioner *mockProvisioner
	)

	ginkgo.BeforeEach(func() {
		repo = newMockEmployeeRepository()
		provisioner = newMockProvisioner()
		service = NewService(repo, provisioner, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("provisions an account and a directory record, returning the temp password", func() {
			created, err := service.Create(1, CreateEmployeeDTO{
				Name:       "Jane Doe",
				Email:      "jane@example.com",
				JobTitle:   "Engineer",
				Role:       "engineer",
				Department: "Engineering",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.TempPassword).To(gomega.Equal("temp1234"))
			gomega.Expect(created.Employee.AccountID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(created.Employee.Status).To(gomega.Equal(StatusOffline))
			gomega.Expect(created.Employee.CreatedBy).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("does not create a directory record when account provisioning fails", func() {
			provisioner.provisionErr = auth.ErrEmailTaken

			_, err := service.Create(1, CreateEmployeeDTO{
				Name:  "Clash",
				Email: "taken@example.com",
			})

			gomega.Expect(err).To(gomega.Equal(auth.ErrEmailTaken))
			gomega.Expect(repo.employees).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("SetActive", func() {
		ginkgo.It("toggles the linked account's active flag", func() {
			created, err := service.Create(1, CreateEmployeeDTO{Name: "Jane", Email: "jane@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.SetActive(created.Employee.ID, false)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(provisioner.activeFlags[created.Employee.AccountID]).To(gomega.BeFalse())

			_, err = service.SetActive(created.Employee.ID, true)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(provisioner.activeFlags[created.Employee.AccountID]).To(gomega.BeTrue())
		})

		ginkgo.It("returns not found for an unknown employee", func() {
			_, err := service.SetActive(999, false)
			gomega.Expect(err).To(gomega.Equal(ErrEmployeeNotFound))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("removes the record and deactivates the account", func() {
			created, err := service.Create(1, CreateEmployeeDTO{Name: "Jane", Email: "jane@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			err = service.Delete(created.Employee.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(repo.employees).To(gomega.BeEmpty())
			gomega.Expect(provisioner.activeFlags[created.Employee.AccountID]).To(gomega.BeFalse())
		})

		ginkgo.It("still succeeds when the account deactivation fails", func() {
			created, err := service.Create(1, CreateEmployeeDTO{Name: "Jane", Email: "jane@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			provisioner.setActiveErr = errors.New("db down")
			err = service.Delete(created.Employee.ID)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(repo.employees).To(gomega.BeEmpty())
		})

		ginkgo.It("returns not found for an unknown employee", func() {
			err := service.Delete(999)
			gomega.Expect(err).To(gomega.Equal(ErrEmployeeNotFound))
		})
	})
})
