package project

import (
	"io"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestProject(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Project Module Suite")
}

type mockProjectRepository struct {
	projects map[int64]*Project
	nextID   int64
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{
		projects: make(map[int64]*Project),
		nextID:   1,
	}
}

func (m *mockProjectRepository) Create(p *Project) error {
	p.ID = m.nextID
	m.nextID++
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectRepository) GetByID(id int64) (*Project, error) {
	if p, ok := m.projects[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, ErrProjectNotFound
}

func (m *mockProjectRepository) List() ([]*Project, error) {
	var out []*Project
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProjectRepository) Update(p *Project) error {
	if _, ok := m.projects[p.ID]; !ok {
		return ErrProjectNotFound
	}
	copied := *p
	m.projects[p.ID] = &copied
	return nil
}

func (m *mockProjectRepository) Delete(id int64) error {
	if _, ok := m.projects[id]; !ok {
		return ErrProjectNotFound
	}
	delete(m.projects, id)
	return nil
}

func intPtr(i int) *int          { return &i }
func int64Ptr(i int64) *int64    { return &i }
func statusPtr(s string) *string { return &s }

var _ = ginkgo.Describe("ProjectService", func() {
	var (
		service *Service
		repo    *mockProjectRepository
	)

	ginkgo.BeforeEach(func() {
		repo = newMockProjectRepository()
		service = NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("defaults a new project to Working status", func() {
			p, err := service.Create(1, CreateProjectDTO{Name: "Website revamp", Budget: 50000})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(p.Status).To(gomega.Equal(StatusWorking))
			gomega.Expect(p.Completion).To(gomega.BeZero())
			gomega.Expect(p.CreatedBy).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("keeps an explicit status", func() {
			p, err := service.Create(1, CreateProjectDTO{Name: "Finished thing", Budget: 0, Completion: 100, Status: StatusDone})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(p.Status).To(gomega.Equal(StatusDone))
			gomega.Expect(p.Completion).To(gomega.Equal(100))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("applies partial updates only to the provided fields", func() {
			p, err := service.Create(1, CreateProjectDTO{Name: "Revamp", Budget: 50000})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			updated, err := service.Update(p.ID, UpdateProjectDTO{
				Completion: intPtr(40),
				Budget:     int64Ptr(60000),
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Name).To(gomega.Equal("Revamp"))
			gomega.Expect(updated.Completion).To(gomega.Equal(40))
			gomega.Expect(updated.Budget).To(gomega.Equal(int64(60000)))
			gomega.Expect(updated.Status).To(gomega.Equal(StatusWorking))
		})

		ginkgo.It("moves a project through its status labels", func() {
			p, err := service.Create(1, CreateProjectDTO{Name: "Revamp", Budget: 50000})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			updated, err := service.Update(p.ID, UpdateProjectDTO{Status: statusPtr(StatusCancelled)})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Status).To(gomega.Equal(StatusCancelled))
		})

		ginkgo.It("returns not found for an unknown project", func() {
			_, err := service.Update(999, UpdateProjectDTO{Completion: intPtr(10)})
			gomega.Expect(err).To(gomega.Equal(ErrProjectNotFound))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("removes the project", func() {
			p, err := service.Create(1, CreateProjectDTO{Name: "Revamp", Budget: 50000})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.Delete(p.ID)).To(gomega.Succeed())
			_, err = service.GetByID(p.ID)
			gomega.Expect(err).To(gomega.Equal(ErrProjectNotFound))
		})

		ginkgo.It("returns not found for an unknown project", func() {
			gomega.Expect(service.Delete(999)).To(gomega.Equal(ErrProjectNotFound))
		})
	})
})
