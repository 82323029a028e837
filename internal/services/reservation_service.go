package services

import (
	"context"
	"fmt"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/internal/models/response_models"
	"concierge/internal/repositories"
	"concierge/pkg/utils"
	"go.uber.org/zap"
)

type ReservationServiceInterface interface {
	// ListReservations fails with ErrReservationNotFound when there are none.
	ListReservations(ctx context.Context) ([]response_models.ReservationResponse, error)
	GetReservation(ctx context.Context, reservationID uint) (*response_models.ReservationResponse, error)
	// DeleteReservation removes the reservation with every proposal it owns
	// and their items, guests and sent emails, atomically.
	DeleteReservation(ctx context.Context, reservationID uint) (*CascadeDeleteResult, error)
}

type CascadeDeleteResult struct {
	Proposals  int64
	Items      int64
	Guests     int64
	SentEmails int64
}

type ReservationService struct {
	tx           infra.Transactor
	reservations repositories.ReservationRepository
	proposals    repositories.ProposalRepository
	items        repositories.ProposalItemRepository
	guests       repositories.ProposalGuestRepository
	sentEmails   repositories.SentEmailRepository
	logger       *zap.Logger
}

func NewReservationService(
	tx infra.Transactor,
	reservations repositories.ReservationRepository,
	proposals repositories.ProposalRepository,
	items repositories.ProposalItemRepository,
	guests repositories.ProposalGuestRepository,
	sentEmails repositories.SentEmailRepository,
	logger *zap.Logger,
) ReservationServiceInterface {
	return &ReservationService{
		tx:           tx,
		reservations: reservations,
		proposals:    proposals,
		items:        items,
		guests:       guests,
		sentEmails:   sentEmails,
		logger:       logger,
	}
}

func (s *ReservationService) ListReservations(ctx context.Context) ([]response_models.ReservationResponse, error) {
	var reservations []db_models.Reservation

	err := s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		var err error
		reservations, err = s.reservations.List(ctx, repositories.IncludeMember, repositories.IncludeProposalItems)
		return err
	})
	if err != nil {
		return nil, storageErr(err)
	}
	if len(reservations) == 0 {
		return nil, utils.ErrReservationNotFound
	}

	out := make([]response_models.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, *buildReservation(&reservations[i]))
	}
	return out, nil
}

func (s *ReservationService) GetReservation(ctx context.Context, reservationID uint) (*response_models.ReservationResponse, error) {
	var reservation *db_models.Reservation

	err := s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		var err error
		reservation, err = s.reservations.GetByID(ctx, reservationID, repositories.IncludeMember, repositories.IncludeProposalItems)
		return err
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return buildReservation(reservation), nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, reservationID uint) (*CascadeDeleteResult, error) {
	result := &CascadeDeleteResult{}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.reservations.GetByID(ctx, reservationID); err != nil {
			return err
		}

		ids, err := s.proposals.ListIDsByReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		// Children first: every row referencing a proposal goes before the
		// proposal, every proposal before the reservation.
		if result.Items, err = s.items.DeleteByProposalIDs(ctx, ids); err != nil {
			return fmt.Errorf("delete proposal items: %w", err)
		}
		if result.Guests, err = s.guests.DeleteByProposalIDs(ctx, ids); err != nil {
			return fmt.Errorf("delete proposal guests: %w", err)
		}
		if result.SentEmails, err = s.sentEmails.DeleteByProposalIDs(ctx, ids); err != nil {
			return fmt.Errorf("delete sent emails: %w", err)
		}
		if result.Proposals, err = s.proposals.DeleteByReservation(ctx, reservationID); err != nil {
			return fmt.Errorf("delete proposals: %w", err)
		}
		if result.Proposals != int64(len(ids)) {
			return fmt.Errorf("proposals of reservation %d changed during delete: expected %d, deleted %d",
				reservationID, len(ids), result.Proposals)
		}

		return s.reservations.Delete(ctx, reservationID)
	})
	if err != nil {
		if !utils.IsNotFound(err) {
			s.logger.Error("reservation cascade delete rolled back",
				zap.Uint("reservation_id", reservationID),
				zap.Error(err))
		}
		return nil, storageErr(err)
	}

	s.logger.Info("reservation deleted",
		zap.Uint("reservation_id", reservationID),
		zap.Int64("proposals", result.Proposals),
		zap.Int64("items", result.Items),
		zap.Int64("guests", result.Guests),
		zap.Int64("sent_emails", result.SentEmails))
	return result, nil
}

func buildReservation(r *db_models.Reservation) *response_models.ReservationResponse {
	out := &response_models.ReservationResponse{
		ReservationSummary: *response_models.BuildReservationSummary(r),
		Proposals:          make([]response_models.ProposalResponse, 0, len(r.Proposals)),
	}
	for i := range r.Proposals {
		out.Proposals = append(out.Proposals, *buildProposal(&r.Proposals[i]))
	}
	return out
}
