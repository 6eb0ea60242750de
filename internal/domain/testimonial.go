package domain

import "time"

type Testimonial struct {
	ID           uint      `json:"id"`
	ClientName   string    `json:"client_name"`
	BusinessName string    `json:"business_name"`
	Comment      string    `json:"comment"`
	Photo        string    `json:"photo"`
	IsActive     bool      `json:"is_active"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
