package services

import (
	"context"
	"fmt"
	"time"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/internal/repositories"
	"concierge/pkg/utils"
	"go.uber.org/zap"
)

type ProposalLifecycleServiceInterface interface {
	// Send marks the proposal SENT, stamps sentAt and logs the email, all in
	// one transaction. Re-sending re-stamps and logs again.
	Send(ctx context.Context, proposalID uint) (*db_models.Proposal, error)
	// SetStatus writes status. Transitions are only checked in strict mode.
	SetStatus(ctx context.Context, proposalID uint, status db_models.ProposalStatus) (*db_models.Proposal, error)
}

var forwardTransitions = map[db_models.ProposalStatus]db_models.ProposalStatus{
	db_models.ProposalStatusDraft:    db_models.ProposalStatusSent,
	db_models.ProposalStatusSent:     db_models.ProposalStatusApproved,
	db_models.ProposalStatusApproved: db_models.ProposalStatusPaid,
}

// ValidateTransition enforces DRAFT -> SENT -> APPROVED -> PAID. Staying in
// the same state is allowed.
func ValidateTransition(from, to db_models.ProposalStatus) error {
	if !to.Valid() {
		return utils.NewFieldError("status", fmt.Sprintf("unknown status %q", to))
	}
	if from == to || forwardTransitions[from] == to {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", utils.ErrInvalidTransition, from, to)
}

type ProposalLifecycleService struct {
	tx        infra.Transactor
	proposals repositories.ProposalRepository
	notifier  INotificationService
	strict    bool
	now       func() time.Time
	logger    *zap.Logger
}

func NewProposalLifecycleService(
	tx infra.Transactor,
	proposals repositories.ProposalRepository,
	notifier INotificationService,
	strict bool,
	logger *zap.Logger,
) *ProposalLifecycleService {
	return &ProposalLifecycleService{
		tx:        tx,
		proposals: proposals,
		notifier:  notifier,
		strict:    strict,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *ProposalLifecycleService) Send(ctx context.Context, proposalID uint) (*db_models.Proposal, error) {
	var updated *db_models.Proposal

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := s.proposals.GetByID(ctx, proposalID, repositories.IncludeReservation, repositories.IncludeItems)
		if err != nil {
			return err
		}

		if s.strict && p.Status != db_models.ProposalStatusDraft && p.Status != db_models.ProposalStatusSent {
			return fmt.Errorf("%w: cannot send a %s proposal", utils.ErrInvalidTransition, p.Status)
		}

		sentAt := s.now().UTC()
		if err := s.proposals.UpdateStatus(ctx, p.ID, repositories.StatusUpdate{
			Status: db_models.ProposalStatusSent,
			SentAt: &sentAt,
		}); err != nil {
			return err
		}

		if _, err := s.notifier.LogProposalSent(ctx, p, sentAt); err != nil {
			return err
		}

		updated, err = s.proposals.GetByID(ctx, p.ID, repositories.IncludeItems)
		return err
	})
	if err != nil {
		return nil, storageErr(err)
	}

	s.logger.Info("proposal sent",
		zap.Uint("proposal_id", proposalID),
		zap.Timep("sent_at", updated.SentAt))
	return updated, nil
}

func (s *ProposalLifecycleService) SetStatus(ctx context.Context, proposalID uint, status db_models.ProposalStatus) (*db_models.Proposal, error) {
	if !status.Valid() {
		return nil, utils.NewFieldError("status", fmt.Sprintf("must be one of %v", db_models.ProposalStatuses))
	}

	var (
		updated *db_models.Proposal
		from    db_models.ProposalStatus
	)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := s.proposals.GetByID(ctx, proposalID)
		if err != nil {
			return err
		}
		from = p.Status

		if s.strict {
			if err := ValidateTransition(p.Status, status); err != nil {
				return err
			}
		}

		if err := s.proposals.UpdateStatus(ctx, p.ID, s.stamp(p, status)); err != nil {
			return err
		}

		updated, err = s.proposals.GetByID(ctx, p.ID, repositories.IncludeItems)
		return err
	})
	if err != nil {
		return nil, storageErr(err)
	}

	s.logger.Info("proposal status changed",
		zap.Uint("proposal_id", proposalID),
		zap.String("from", string(from)),
		zap.String("to", string(status)))
	return updated, nil
}

// stamp fills in the timestamps a status implies but the row lacks, so a
// non-DRAFT proposal is never observed without sentAt.
func (s *ProposalLifecycleService) stamp(p *db_models.Proposal, status db_models.ProposalStatus) repositories.StatusUpdate {
	now := s.now().UTC()
	update := repositories.StatusUpdate{Status: status}

	if status == db_models.ProposalStatusDraft {
		return update
	}
	if p.SentAt == nil {
		update.SentAt = &now
	}
	if (status == db_models.ProposalStatusApproved || status == db_models.ProposalStatusPaid) && p.ApprovedAt == nil {
		update.ApprovedAt = &now
	}
	if status == db_models.ProposalStatusPaid && p.PaidAt == nil {
		update.PaidAt = &now
	}
	return update
}
