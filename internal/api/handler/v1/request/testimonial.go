package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateTestimonialRequest struct {
	ClientName   string `json:"client_name" validate:"required"`
	BusinessName string `json:"business_name" validate:"required"`
	Comment      string `json:"comment" validate:"required"`
	Photo        string `json:"photo" validate:"required"`
	IsActive     *bool  `json:"is_active"`
	Order        int    `json:"order"`
}

func (req *CreateTestimonialRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ClientName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.BusinessName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Comment, validation.Required, validation.Length(1, 300)),
		validation.Field(&req.Photo, validation.Required),
	)
}

type UpdateTestimonialRequest struct {
	CreateTestimonialRequest
}
