package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrDuplicateParticipant = errors.New("phone already registered for this event")
)

type Participant struct {
	ID uint `gorm:"primaryKey"`

	EventID  uint   `gorm:"not null;uniqueIndex:idx_participants_event_phone"`
	Name     string `gorm:"not null"`
	Phone    string `gorm:"not null;uniqueIndex:idx_participants_event_phone"`
	TicketID string `gorm:"not null"`

	// Stored for the per-connection join limit, never rendered to clients.
	IPAddress string

	CreatedAt time.Time `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_participants_event_phone") {
			return Participant{}, ErrDuplicateParticipant
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByEventAndPhone(ctx context.Context, eventID uint, phone string) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).
		First(&participant, "event_id = ? AND phone = ?", eventID, phone)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) ExistsByEventAndTicket(ctx context.Context, eventID uint, ticketID string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("event_id = ? AND ticket_id = ?", eventID, ticketID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *ParticipantDAO) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("event_id = ?", eventID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *ParticipantDAO) CountByEventAndIP(ctx context.Context, eventID uint, ip string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("event_id = ? AND ip_address = ?", eventID, ip).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// FindByEventAtRank returns the participant at the given zero-based rank in
// insertion order. Combined with a uniform random rank this yields a uniform
// pick over the whole entry set.
func (d *ParticipantDAO) FindByEventAtRank(ctx context.Context, eventID uint, rank int) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Offset(rank).
		First(&participant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindRecentByEvent(ctx context.Context, eventID uint, limit int) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}
