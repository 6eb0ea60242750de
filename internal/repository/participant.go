package repository

import (
	"context"
	"fmt"

	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound  = dao.ErrParticipantNotFound
	ErrDuplicateParticipant = dao.ErrDuplicateParticipant
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByEventAndPhone(ctx context.Context, eventID uint, phone string) (dao.Participant, error)
	ExistsByEventAndTicket(ctx context.Context, eventID uint, ticketID string) (bool, error)
	CountByEvent(ctx context.Context, eventID uint) (int64, error)
	CountByEventAndIP(ctx context.Context, eventID uint, ip string) (int64, error)
	FindByEventAtRank(ctx context.Context, eventID uint, rank int) (dao.Participant, error)
	FindRecentByEvent(ctx context.Context, eventID uint, limit int) ([]dao.Participant, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, dao.Participant{
		EventID:   participant.EventID,
		Name:      participant.Name,
		Phone:     participant.Phone,
		TicketID:  participant.TicketID,
		IPAddress: participant.IPAddress,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipantRepository) FindByEventAndPhone(ctx context.Context, eventID uint, phone string) (domain.Participant, error) {
	found, err := r.dao.FindByEventAndPhone(ctx, eventID, phone)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByEventAndPhone -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) TicketExists(ctx context.Context, eventID uint, ticketID string) (bool, error) {
	exists, err := r.dao.ExistsByEventAndTicket(ctx, eventID, ticketID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByEventAndTicket -> %w", err)
	}

	return exists, nil
}

func (r *ParticipantRepository) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	count, err := r.dao.CountByEvent(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByEvent -> %w", err)
	}

	return count, nil
}

func (r *ParticipantRepository) CountByEventAndIP(ctx context.Context, eventID uint, ip string) (int64, error) {
	count, err := r.dao.CountByEventAndIP(ctx, eventID, ip)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByEventAndIP -> %w", err)
	}

	return count, nil
}

func (r *ParticipantRepository) FindByEventAtRank(ctx context.Context, eventID uint, rank int) (domain.Participant, error) {
	found, err := r.dao.FindByEventAtRank(ctx, eventID, rank)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByEventAtRank -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) FindRecentByEvent(ctx context.Context, eventID uint, limit int) ([]domain.Participant, error) {
	found, err := r.dao.FindRecentByEvent(ctx, eventID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecentByEvent -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(found))
	for _, participant := range found {
		participants = append(participants, r.daoToDomain(participant))
	}

	return participants, nil
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:        p.ID,
		EventID:   p.EventID,
		Name:      p.Name,
		Phone:     p.Phone,
		TicketID:  p.TicketID,
		IPAddress: p.IPAddress,
		CreatedAt: p.CreatedAt,
	}
}
