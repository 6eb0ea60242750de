package repository

import (
	"context"
	"fmt"

	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
	ErrNoActiveEvent = dao.ErrNoActiveEvent
	ErrAlreadyDrawn  = dao.ErrAlreadyDrawn
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindActive(ctx context.Context) (dao.Event, error)
	DeactivateOthers(ctx context.Context, exceptID uint) error
	SetWinner(ctx context.Context, eventID, participantID uint) (dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, event := range found {
		events = append(events, r.daoToDomain(event))
	}

	return events, nil
}

func (r *EventRepository) FindActive(ctx context.Context) (domain.Event, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) DeactivateOthers(ctx context.Context, exceptID uint) error {
	if err := r.dao.DeactivateOthers(ctx, exceptID); err != nil {
		return fmt.Errorf("r.dao.DeactivateOthers -> %w", err)
	}

	return nil
}

func (r *EventRepository) SetWinner(ctx context.Context, eventID, participantID uint) (domain.Event, error) {
	updated, err := r.dao.SetWinner(ctx, eventID, participantID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.SetWinner -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Prize:       e.Prize,
		PrizeImage:  e.PrizeImage,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		IsActive:    e.IsActive,
		Terms:       e.Terms,
		WinnerID:    e.WinnerID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EventRepository) domainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Prize:       e.Prize,
		PrizeImage:  e.PrizeImage,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		IsActive:    e.IsActive,
		Terms:       e.Terms,
		WinnerID:    e.WinnerID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
