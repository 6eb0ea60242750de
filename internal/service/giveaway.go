package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/pkg/ticket"
	"github.com/vectore-agency/vectore-api/internal/repository"
)

var (
	ErrEventNotFound     = repository.ErrEventNotFound
	ErrNoActiveEvent     = repository.ErrNoActiveEvent
	ErrAlreadyDrawn      = repository.ErrAlreadyDrawn
	ErrEventNotActive    = errors.New("event is not active")
	ErrEventExpired      = errors.New("event has ended")
	ErrRateLimitExceeded = errors.New("registration limit reached for this connection")
	ErrNoParticipants    = errors.New("event has no participants")

	// ErrActiveEventExpired marks an event that is still flagged active but
	// whose end date has passed. Expiry is lazy: the flag is not flipped on
	// read, the event is just reported as unavailable.
	ErrActiveEventExpired = errors.New("active event has ended")
)

const (
	// Best-effort anti-bot limit on entries sharing a source IP.
	maxJoinsPerIP = 3

	// Ticket candidates checked against existing entries before giving up
	// and accepting the small residual chance of a duplicate display string.
	maxTicketAttempts = 5

	// Admin stats preview size.
	recentParticipantsLimit = 50
)

type GiveawayEventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindActive(ctx context.Context) (domain.Event, error)
	DeactivateOthers(ctx context.Context, exceptID uint) error
	SetWinner(ctx context.Context, eventID, participantID uint) (domain.Event, error)
}

type GiveawayParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByEventAndPhone(ctx context.Context, eventID uint, phone string) (domain.Participant, error)
	TicketExists(ctx context.Context, eventID uint, ticketID string) (bool, error)
	CountByEvent(ctx context.Context, eventID uint) (int64, error)
	CountByEventAndIP(ctx context.Context, eventID uint, ip string) (int64, error)
	FindByEventAtRank(ctx context.Context, eventID uint, rank int) (domain.Participant, error)
	FindRecentByEvent(ctx context.Context, eventID uint, limit int) ([]domain.Participant, error)
}

type GiveawayService struct {
	events       GiveawayEventRepository
	participants GiveawayParticipantRepository

	now       func() time.Time
	randInt   func(n int) int
	newTicket func() string
}

func NewGiveawayService(events GiveawayEventRepository, participants GiveawayParticipantRepository) *GiveawayService {
	return &GiveawayService{
		events:       events,
		participants: participants,
		now:          time.Now,
		randInt:      rand.Intn,
		newTicket:    ticket.Generate,
	}
}

// JoinResult carries the ticket handed back to the visitor.
// AlreadyRegistered marks the idempotent repeat-submission case, where the
// existing ticket is returned instead of a rejection.
type JoinResult struct {
	TicketID          string
	AlreadyRegistered bool
}

func (s *GiveawayService) Join(ctx context.Context, eventID uint, name, phone, ip string) (JoinResult, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return JoinResult{}, ErrEventNotFound
		}

		return JoinResult{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if !event.IsActive {
		return JoinResult{}, ErrEventNotActive
	}

	if event.Expired(s.now()) {
		return JoinResult{}, ErrEventExpired
	}

	existing, err := s.participants.FindByEventAndPhone(ctx, eventID, phone)
	if err == nil {
		return JoinResult{TicketID: existing.TicketID, AlreadyRegistered: true}, nil
	}
	if !errors.Is(err, repository.ErrParticipantNotFound) {
		return JoinResult{}, fmt.Errorf("s.participants.FindByEventAndPhone -> %w", err)
	}

	ipCount, err := s.participants.CountByEventAndIP(ctx, eventID, ip)
	if err != nil {
		return JoinResult{}, fmt.Errorf("s.participants.CountByEventAndIP -> %w", err)
	}
	if ipCount >= maxJoinsPerIP {
		return JoinResult{}, ErrRateLimitExceeded
	}

	ticketID, err := s.uniqueTicket(ctx, eventID)
	if err != nil {
		return JoinResult{}, err
	}

	created, err := s.participants.Create(ctx, domain.Participant{
		EventID:   eventID,
		Name:      name,
		Phone:     phone,
		TicketID:  ticketID,
		IPAddress: ip,
	})
	if err != nil {
		// The (event, phone) unique index closes the race between the
		// existence check above and this insert; the loser of the race gets
		// the same idempotent answer a plain repeat submission would.
		if errors.Is(err, repository.ErrDuplicateParticipant) {
			winner, findErr := s.participants.FindByEventAndPhone(ctx, eventID, phone)
			if findErr != nil {
				return JoinResult{}, fmt.Errorf("s.participants.FindByEventAndPhone -> %w", findErr)
			}

			return JoinResult{TicketID: winner.TicketID, AlreadyRegistered: true}, nil
		}

		return JoinResult{}, fmt.Errorf("s.participants.Create -> %w", err)
	}

	return JoinResult{TicketID: created.TicketID}, nil
}

// uniqueTicket draws ticket candidates until one is unused for the event,
// giving up after maxTicketAttempts checks. The 900-value space makes a
// lingering duplicate possible but acceptably rare.
func (s *GiveawayService) uniqueTicket(ctx context.Context, eventID uint) (string, error) {
	ticketID := s.newTicket()

	for attempts := 0; attempts < maxTicketAttempts; attempts++ {
		exists, err := s.participants.TicketExists(ctx, eventID, ticketID)
		if err != nil {
			return "", fmt.Errorf("s.participants.TicketExists -> %w", err)
		}
		if !exists {
			return ticketID, nil
		}

		ticketID = s.newTicket()
	}

	return ticketID, nil
}

// Draw picks one participant uniformly at random, records them as the
// event's winner and closes the event. The winner assignment is a
// conditional write, so concurrent draws cannot pick two winners: the
// second caller gets ErrAlreadyDrawn.
func (s *GiveawayService) Draw(ctx context.Context, eventID uint) (domain.WinnerInfo, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.WinnerInfo{}, ErrEventNotFound
		}

		return domain.WinnerInfo{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.WinnerID != nil {
		return domain.WinnerInfo{}, ErrAlreadyDrawn
	}

	count, err := s.participants.CountByEvent(ctx, eventID)
	if err != nil {
		return domain.WinnerInfo{}, fmt.Errorf("s.participants.CountByEvent -> %w", err)
	}
	if count == 0 {
		return domain.WinnerInfo{}, ErrNoParticipants
	}

	rank := s.randInt(int(count))

	winner, err := s.participants.FindByEventAtRank(ctx, eventID, rank)
	if err != nil {
		return domain.WinnerInfo{}, fmt.Errorf("s.participants.FindByEventAtRank -> %w", err)
	}

	if _, err = s.events.SetWinner(ctx, eventID, winner.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadyDrawn) {
			return domain.WinnerInfo{}, ErrAlreadyDrawn
		}

		return domain.WinnerInfo{}, fmt.Errorf("s.events.SetWinner -> %w", err)
	}

	return domain.WinnerInfo{
		Name:        winner.Name,
		TicketID:    winner.TicketID,
		PhoneMasked: maskPhone(winner.Phone),
	}, nil
}

// GetActiveEvent returns the single event flagged active. An active event
// past its end date yields ErrActiveEventExpired without touching the flag.
func (s *GiveawayService) GetActiveEvent(ctx context.Context) (domain.Event, error) {
	event, err := s.events.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveEvent) {
			return domain.Event{}, ErrNoActiveEvent
		}

		return domain.Event{}, fmt.Errorf("s.events.FindActive -> %w", err)
	}

	if event.Expired(s.now()) {
		return domain.Event{}, ErrActiveEventExpired
	}

	return event, nil
}

func (s *GiveawayService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.events.FindAll -> %w", err)
	}

	return events, nil
}

// CreateEvent stores a new event. When it arrives flagged active, every
// other event is deactivated first so at most one event is active at a time.
func (s *GiveawayService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.StartDate.IsZero() {
		event.StartDate = s.now()
	}
	if event.Terms == "" {
		event.Terms = domain.DefaultTerms
	}

	if event.IsActive {
		if err := s.events.DeactivateOthers(ctx, 0); err != nil {
			return domain.Event{}, fmt.Errorf("s.events.DeactivateOthers -> %w", err)
		}
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.events.Create -> %w", err)
	}

	return created, nil
}

// UpdateEvent applies the admin-editable fields. Activating an event
// deactivates all others, same rule as CreateEvent.
func (s *GiveawayService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	current, err := s.events.FindByID(ctx, event.ID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.IsActive {
		if err = s.events.DeactivateOthers(ctx, event.ID); err != nil {
			return domain.Event{}, fmt.Errorf("s.events.DeactivateOthers -> %w", err)
		}
	}

	current.Title = event.Title
	current.Description = event.Description
	current.Prize = event.Prize
	current.PrizeImage = event.PrizeImage
	if !event.StartDate.IsZero() {
		current.StartDate = event.StartDate
	}
	current.EndDate = event.EndDate
	current.IsActive = event.IsActive
	if event.Terms != "" {
		current.Terms = event.Terms
	}

	updated, err := s.events.Update(ctx, current)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.events.Update -> %w", err)
	}

	return updated, nil
}

// GetStats returns the total entry count and the most recent entries,
// capped at 50 for the admin preview.
func (s *GiveawayService) GetStats(ctx context.Context, eventID uint) (domain.EventStats, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.EventStats{}, ErrEventNotFound
		}

		return domain.EventStats{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	count, err := s.participants.CountByEvent(ctx, eventID)
	if err != nil {
		return domain.EventStats{}, fmt.Errorf("s.participants.CountByEvent -> %w", err)
	}

	recent, err := s.participants.FindRecentByEvent(ctx, eventID, recentParticipantsLimit)
	if err != nil {
		return domain.EventStats{}, fmt.Errorf("s.participants.FindRecentByEvent -> %w", err)
	}

	return domain.EventStats{
		Total:  count,
		Recent: recent,
	}, nil
}

// maskPhone hides everything but the last three digits, keeping the
// original length, e.g. "987654321" becomes "******321".
func maskPhone(phone string) string {
	if len(phone) <= 3 {
		return phone
	}

	return strings.Repeat("*", len(phone)-3) + phone[len(phone)-3:]
}
