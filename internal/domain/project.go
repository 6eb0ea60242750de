package domain

import "time"

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Client      string         `json:"client"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Thumbnail   string         `json:"thumbnail"`
	Images      []ProjectImage `json:"images,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Date        time.Time      `json:"date"`
	IsFeatured  bool           `json:"is_featured"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type ProjectImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}
