package repository

import (
	"github.com/google/uuid"
	"github.com/tracknest/tracker-go/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetProjectByID(id string) (project.Project, error)
	GetProjectWithRelations(id string) (project.Project, error)
	ListProjectsByOwner(ownerID string) ([]project.Project, error)
	CreateProject(p *project.Project) error
	UpdateProject(p *project.Project) error
	DeleteProject(id string) error
	CountByOwner(ownerID string) (int64, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	return &DBProjectRepo{db: tx}
}

func (r *DBProjectRepo) GetProjectByID(id string) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, "id = ?", id).Error
	return p, err
}

func (r *DBProjectRepo) GetProjectWithRelations(id string) (project.Project, error) {
	var p project.Project
	err := r.db.Preload("Owner").Preload("Tickets").First(&p, "id = ?", id).Error
	return p, err
}

func (r *DBProjectRepo) ListProjectsByOwner(ownerID string) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Preload("Tickets").
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id string) error {
	return r.db.Delete(&project.Project{}, "id = ?", id).Error
}

func (r *DBProjectRepo) CountByOwner(ownerID string) (int64, error) {
	var n int64
	err := r.db.Model(&project.Project{}).Where("owner_id = ?", ownerID).Count(&n).Error
	return n, err
}
