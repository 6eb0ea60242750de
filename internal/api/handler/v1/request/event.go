package request

import (
	"errors"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// At least six digits overall, optional leading +, allowing the usual
// separators. The lookahead needs regexp2; Go's regexp has no lookaround.
const phoneRegexPattern = `^(?=(?:\D*\d){6,15}\D*$)\+?[\d\s().-]+$`

var errInvalidPhone = errors.New("the phone number must contain between 6 and 15 digits")

type JoinEventRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

func (req *JoinEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Phone, validation.Required),
	)
	if err != nil {
		return err
	}

	phoneExp := regexp2.MustCompile(phoneRegexPattern, regexp2.None)
	if ok, _ := phoneExp.MatchString(req.Phone); !ok {
		return errInvalidPhone
	}

	return nil
}

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Prize       string    `json:"prize" validate:"required"`
	PrizeImage  string    `json:"prize_image"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	IsActive    bool      `json:"is_active"`
	Terms       string    `json:"terms"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Prize, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
}

type UpdateEventRequest struct {
	CreateEventRequest
}
