package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNoActiveEvent = errors.New("no active event")
	ErrAlreadyDrawn  = errors.New("event winner already drawn")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	Prize       string `gorm:"not null"`
	PrizeImage  string
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	IsActive    bool      `gorm:"not null;default:false"`
	Terms       string
	WinnerID    *uint

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Save(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindActive(ctx context.Context) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "is_active = ?", true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrNoActiveEvent
		}

		return Event{}, result.Error
	}

	return event, nil
}

// DeactivateOthers flips is_active off for every event except the given id.
// Pass zero to deactivate all events (no row has id 0).
func (d *EventDAO) DeactivateOthers(ctx context.Context, exceptID uint) error {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id <> ?", exceptID).
		Update("is_active", false)

	return result.Error
}

// SetWinner assigns the winner and closes the event in a single conditional
// write. The update only applies while winner_id is still NULL, so a second
// concurrent draw observes ErrAlreadyDrawn instead of overwriting.
func (d *EventDAO) SetWinner(ctx context.Context, eventID, participantID uint) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ? AND winner_id IS NULL", eventID).
		Updates(map[string]interface{}{
			"winner_id": participantID,
			"is_active": false,
		})
	if result.Error != nil {
		return Event{}, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, eventID); err != nil {
			return Event{}, err
		}

		return Event{}, ErrAlreadyDrawn
	}

	return d.FindByID(ctx, eventID)
}
