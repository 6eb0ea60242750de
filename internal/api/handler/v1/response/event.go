package response

import (
	"time"

	"github.com/vectore-agency/vectore-api/internal/domain"
)

// PublicEvent is the visitor-facing event shape. The winner reference is
// deliberately absent.
type PublicEvent struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Prize       string    `json:"prize"`
	PrizeImage  string    `json:"prize_image,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Terms       string    `json:"terms"`
}

func NewPublicEvent(e domain.Event) *PublicEvent {
	return &PublicEvent{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Prize:       e.Prize,
		PrizeImage:  e.PrizeImage,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Terms:       e.Terms,
	}
}

// ActiveEventResponse reports the currently joinable event. "No active
// event" is a success, not a failure; Code carries "EXPIRED" when the
// active event has lapsed.
type ActiveEventResponse struct {
	Success bool         `json:"success"`
	Active  bool         `json:"active"`
	Code    string       `json:"code,omitempty"`
	Data    *PublicEvent `json:"data,omitempty"`
}

type JoinEventResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	TicketID          string `json:"ticket_id"`
	AlreadyRegistered bool   `json:"already_registered,omitempty"`
}

type DrawWinnerResponse struct {
	Success bool              `json:"success"`
	Winner  domain.WinnerInfo `json:"winner"`
}

type EventStatsResponse struct {
	Success bool                 `json:"success"`
	Total   int64                `json:"total"`
	Recent  []domain.Participant `json:"recent"`
}
