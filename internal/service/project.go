package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/repository"
)

var ErrProjectNotFound = repository.ErrProjectNotFound

type ProjectRepository interface {
	Create(ctx context.Context, project domain.Project) (domain.Project, error)
	Update(ctx context.Context, project domain.Project) (domain.Project, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
}

type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return projects, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return domain.Project{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	current, err := s.repo.FindByID(ctx, project.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}

		return domain.Project{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	project.CreatedAt = current.CreatedAt

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return domain.Project{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
