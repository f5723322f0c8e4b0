package postgres

import (
	"errors"

	"github.com/danisworo/workdesk/internal/project"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *ProjectRepository) GetByID(id int64) (*project.Project, error) {
	var p project.Project
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) List() ([]*project.Project, error) {
	var projects []*project.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Update(p *project.Project) error {
	return r.db.Model(&project.Project{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":       p.Name,
			"budget":     p.Budget,
			"status":     p.Status,
			"completion": p.Completion,
			"updated_at": p.UpdatedAt,
		}).Error
}

func (r *ProjectRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&project.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}
