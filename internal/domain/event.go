package domain

import "time"

// DefaultTerms is the legal boilerplate applied when an event is created
// without its own terms text.
const DefaultTerms = "Participan mayores de 18 años residentes en Pucallpa."

// Event is a time-boxed giveaway with one prize and one eventual winner.
type Event struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Prize       string     `json:"prize"`
	PrizeImage  string     `json:"prize_image,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	IsActive    bool       `json:"is_active"`
	Terms       string     `json:"terms"`
	WinnerID    *uint      `json:"winner_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Expired reports whether the event's end date has passed at the given time.
// Expiry is computed at read time and never persisted back.
func (e Event) Expired(now time.Time) bool {
	return e.EndDate.Before(now)
}

// Participant is a single entry in an event, keyed by phone number within
// that event.
type Participant struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"event_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	TicketID  string    `json:"ticket_id"`
	IPAddress string    `json:"-"` // privacy-sensitive, never rendered
	CreatedAt time.Time `json:"created_at"`
}

// WinnerInfo is the public shape of a draw result. The phone number is
// masked down to its last three digits.
type WinnerInfo struct {
	Name        string `json:"name"`
	TicketID    string `json:"ticket_id"`
	PhoneMasked string `json:"phone_masked"`
}

// EventStats is the admin preview of an event's entries.
type EventStats struct {
	Total  int64         `json:"total"`
	Recent []Participant `json:"recent"`
}
