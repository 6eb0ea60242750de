package repository

import (
	"context"
	"fmt"

	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/repository/dao"
)

var ErrProjectNotFound = dao.ErrProjectNotFound

type ProjectDAO interface {
	Insert(ctx context.Context, project dao.Project) (dao.Project, error)
	Update(ctx context.Context, project dao.Project) (dao.Project, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (dao.Project, error)
	FindAll(ctx context.Context) ([]dao.Project, error)
}

type ProjectRepository struct {
	dao ProjectDAO
}

func NewProjectRepository(dao ProjectDAO) *ProjectRepository {
	return &ProjectRepository{
		dao: dao,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(project))
	if err != nil {
		return domain.Project{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProjectRepository) Update(ctx context.Context, project domain.Project) (domain.Project, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(project))
	if err != nil {
		return domain.Project{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (domain.Project, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Project{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	projects := make([]domain.Project, 0, len(found))
	for _, project := range found {
		projects = append(projects, r.daoToDomain(project))
	}

	return projects, nil
}

func (r *ProjectRepository) daoToDomain(p dao.Project) domain.Project {
	images := make([]domain.ProjectImage, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, domain.ProjectImage{URL: img.URL, Caption: img.Caption})
	}

	return domain.Project{
		ID:          p.ID,
		Title:       p.Title,
		Client:      p.Client,
		Category:    p.Category,
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		Images:      images,
		Tags:        p.Tags,
		Date:        p.Date,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProjectRepository) domainToDAO(p domain.Project) dao.Project {
	images := make([]dao.ProjectImage, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, dao.ProjectImage{URL: img.URL, Caption: img.Caption})
	}

	return dao.Project{
		ID:          p.ID,
		Title:       p.Title,
		Client:      p.Client,
		Category:    p.Category,
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		Images:      images,
		Tags:        p.Tags,
		Date:        p.Date,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
