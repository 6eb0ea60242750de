package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type Testimonial struct {
	ID uint `gorm:"primaryKey"`

	ClientName   string `gorm:"not null"`
	BusinessName string `gorm:"not null"`
	Comment      string `gorm:"not null;size:300"`
	Photo        string `gorm:"not null"`
	IsActive     bool   `gorm:"not null"`
	DisplayOrder int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TestimonialDAO struct {
	db *gorm.DB
}

func NewTestimonialDAO(db *gorm.DB) *TestimonialDAO {
	return &TestimonialDAO{
		db: db,
	}
}

func (d *TestimonialDAO) Insert(ctx context.Context, testimonial Testimonial) (Testimonial, error) {
	result := d.db.WithContext(ctx).Create(&testimonial)
	if result.Error != nil {
		return Testimonial{}, result.Error
	}

	return testimonial, nil
}

func (d *TestimonialDAO) Update(ctx context.Context, testimonial Testimonial) (Testimonial, error) {
	result := d.db.WithContext(ctx).Save(&testimonial)
	if result.Error != nil {
		return Testimonial{}, result.Error
	}

	return testimonial, nil
}

func (d *TestimonialDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}

	return nil
}

func (d *TestimonialDAO) FindByID(ctx context.Context, id uint) (Testimonial, error) {
	var testimonial Testimonial

	result := d.db.WithContext(ctx).First(&testimonial, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Testimonial{}, ErrTestimonialNotFound
		}

		return Testimonial{}, result.Error
	}

	return testimonial, nil
}

func (d *TestimonialDAO) FindAll(ctx context.Context) ([]Testimonial, error) {
	var testimonials []Testimonial

	result := d.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&testimonials)
	if result.Error != nil {
		return nil, result.Error
	}

	return testimonials, nil
}

func (d *TestimonialDAO) FindActive(ctx context.Context) ([]Testimonial, error) {
	var testimonials []Testimonial

	result := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, created_at DESC").
		Find(&testimonials)
	if result.Error != nil {
		return nil, result.Error
	}

	return testimonials, nil
}
