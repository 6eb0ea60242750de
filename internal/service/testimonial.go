package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/repository"
)

var ErrTestimonialNotFound = repository.ErrTestimonialNotFound

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error)
	Update(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (domain.Testimonial, error)
	FindAll(ctx context.Context) ([]domain.Testimonial, error)
	FindActive(ctx context.Context) ([]domain.Testimonial, error)
}

type TestimonialService struct {
	repo TestimonialRepository
}

func NewTestimonialService(repo TestimonialRepository) *TestimonialService {
	return &TestimonialService{
		repo: repo,
	}
}

// ListActiveTestimonials returns the testimonials shown on the public site.
func (s *TestimonialService) ListActiveTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	testimonials, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return testimonials, nil
}

func (s *TestimonialService) ListAllTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	testimonials, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return testimonials, nil
}

func (s *TestimonialService) CreateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error) {
	created, err := s.repo.Create(ctx, testimonial)
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TestimonialService) UpdateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error) {
	current, err := s.repo.FindByID(ctx, testimonial.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return domain.Testimonial{}, ErrTestimonialNotFound
		}

		return domain.Testimonial{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	testimonial.CreatedAt = current.CreatedAt

	updated, err := s.repo.Update(ctx, testimonial)
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TestimonialService) DeleteTestimonial(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return ErrTestimonialNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
