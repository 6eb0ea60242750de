package repository

import (
	"context"
	"fmt"

	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/repository/dao"
)

var ErrTestimonialNotFound = dao.ErrTestimonialNotFound

type TestimonialDAO interface {
	Insert(ctx context.Context, testimonial dao.Testimonial) (dao.Testimonial, error)
	Update(ctx context.Context, testimonial dao.Testimonial) (dao.Testimonial, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (dao.Testimonial, error)
	FindAll(ctx context.Context) ([]dao.Testimonial, error)
	FindActive(ctx context.Context) ([]dao.Testimonial, error)
}

type TestimonialRepository struct {
	dao TestimonialDAO
}

func NewTestimonialRepository(dao TestimonialDAO) *TestimonialRepository {
	return &TestimonialRepository{
		dao: dao,
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(testimonial))
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TestimonialRepository) Update(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(testimonial))
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id uint) (domain.Testimonial, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TestimonialRepository) FindAll(ctx context.Context) ([]domain.Testimonial, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *TestimonialRepository) FindActive(ctx context.Context) ([]domain.Testimonial, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *TestimonialRepository) daoToDomainSlice(ts []dao.Testimonial) []domain.Testimonial {
	testimonials := make([]domain.Testimonial, 0, len(ts))
	for _, t := range ts {
		testimonials = append(testimonials, r.daoToDomain(t))
	}

	return testimonials
}

func (r *TestimonialRepository) daoToDomain(t dao.Testimonial) domain.Testimonial {
	return domain.Testimonial{
		ID:           t.ID,
		ClientName:   t.ClientName,
		BusinessName: t.BusinessName,
		Comment:      t.Comment,
		Photo:        t.Photo,
		IsActive:     t.IsActive,
		Order:        t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TestimonialRepository) domainToDAO(t domain.Testimonial) dao.Testimonial {
	return dao.Testimonial{
		ID:           t.ID,
		ClientName:   t.ClientName,
		BusinessName: t.BusinessName,
		Comment:      t.Comment,
		Photo:        t.Photo,
		IsActive:     t.IsActive,
		DisplayOrder: t.Order,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
