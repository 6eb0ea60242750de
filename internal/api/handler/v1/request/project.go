package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type ProjectImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type CreateProjectRequest struct {
	Title       string         `json:"title" validate:"required"`
	Client      string         `json:"client" validate:"required"`
	Category    string         `json:"category" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Thumbnail   string         `json:"thumbnail" validate:"required"`
	Images      []ProjectImage `json:"images"`
	Tags        []string       `json:"tags"`
	Date        time.Time      `json:"date"`
	IsFeatured  bool           `json:"is_featured"`
}

func (req *CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Client, validation.Required),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Thumbnail, validation.Required),
	)
}

type UpdateProjectRequest struct {
	CreateProjectRequest
}
