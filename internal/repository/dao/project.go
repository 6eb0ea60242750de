package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type Project struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Client      string `gorm:"not null"`
	Category    string `gorm:"not null"`
	Description string `gorm:"not null"`
	Thumbnail   string `gorm:"not null"`
	Images      []ProjectImage `gorm:"serializer:json"`
	Tags        []string       `gorm:"serializer:json"`
	Date        time.Time      `gorm:"not null"`
	IsFeatured  bool           `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProjectImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type ProjectDAO struct {
	db *gorm.DB
}

func NewProjectDAO(db *gorm.DB) *ProjectDAO {
	return &ProjectDAO{
		db: db,
	}
}

func (d *ProjectDAO) Insert(ctx context.Context, project Project) (Project, error) {
	result := d.db.WithContext(ctx).Create(&project)
	if result.Error != nil {
		return Project{}, result.Error
	}

	return project, nil
}

func (d *ProjectDAO) Update(ctx context.Context, project Project) (Project, error) {
	result := d.db.WithContext(ctx).Save(&project)
	if result.Error != nil {
		return Project{}, result.Error
	}

	return project, nil
}

func (d *ProjectDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Project{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (d *ProjectDAO) FindByID(ctx context.Context, id uint) (Project, error) {
	var project Project

	result := d.db.WithContext(ctx).First(&project, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Project{}, ErrProjectNotFound
		}

		return Project{}, result.Error
	}

	return project, nil
}

func (d *ProjectDAO) FindAll(ctx context.Context) ([]Project, error) {
	var projects []Project

	result := d.db.WithContext(ctx).
		Order("is_featured DESC, date DESC").
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}
