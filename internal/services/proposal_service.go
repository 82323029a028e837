package services

import (
	"context"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/internal/models/request_models"
	"concierge/internal/models/response_models"
	"concierge/internal/repositories"
	"go.uber.org/zap"
)

type ProposalServiceInterface interface {
	CreateProposal(ctx context.Context, req request_models.CreateProposalRequest) (*response_models.ProposalResponse, error)
	GetProposal(ctx context.Context, proposalID uint) (*response_models.ProposalResponse, error)
	ListProposals(ctx context.Context) ([]response_models.ProposalResponse, error)
	UpdateProposal(ctx context.Context, proposalID uint, req request_models.UpdateProposalRequest) (*response_models.ProposalResponse, error)
	SendProposal(ctx context.Context, proposalID uint) (*response_models.ProposalResponse, error)
}

type ProposalService struct {
	tx           infra.Transactor
	proposals    repositories.ProposalRepository
	reservations repositories.ReservationRepository
	lifecycle    ProposalLifecycleServiceInterface
	logger       *zap.Logger
}

func NewProposalService(
	tx infra.Transactor,
	proposals repositories.ProposalRepository,
	reservations repositories.ReservationRepository,
	lifecycle ProposalLifecycleServiceInterface,
	logger *zap.Logger,
) ProposalServiceInterface {
	return &ProposalService{
		tx:           tx,
		proposals:    proposals,
		reservations: reservations,
		lifecycle:    lifecycle,
		logger:       logger,
	}
}

func (s *ProposalService) CreateProposal(ctx context.Context, req request_models.CreateProposalRequest) (*response_models.ProposalResponse, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	proposal := &db_models.Proposal{
		ReservationID: *req.ReservationID,
		Status:        db_models.ProposalStatusDraft,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.reservations.GetByID(ctx, proposal.ReservationID); err != nil {
			return err
		}
		return s.proposals.Create(ctx, proposal)
	})
	if err != nil {
		return nil, storageErr(err)
	}

	s.logger.Info("proposal created",
		zap.Uint("proposal_id", proposal.ID),
		zap.Uint("reservation_id", proposal.ReservationID))
	return buildProposal(proposal), nil
}

func (s *ProposalService) GetProposal(ctx context.Context, proposalID uint) (*response_models.ProposalResponse, error) {
	var proposal *db_models.Proposal

	err := s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		var err error
		proposal, err = s.proposals.GetByID(ctx, proposalID,
			repositories.IncludeReservation,
			repositories.IncludeItems,
			repositories.IncludeGuests,
			repositories.IncludeSentEmails,
		)
		return err
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return buildProposal(proposal).WithCollections(proposal.Guests, proposal.SentEmails), nil
}

func (s *ProposalService) ListProposals(ctx context.Context) ([]response_models.ProposalResponse, error) {
	var proposals []db_models.Proposal

	err := s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		var err error
		proposals, err = s.proposals.List(ctx, repositories.IncludeReservation, repositories.IncludeItems)
		return err
	})
	if err != nil {
		return nil, storageErr(err)
	}

	out := make([]response_models.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		out = append(out, *buildProposal(&proposals[i]))
	}
	return out, nil
}

func (s *ProposalService) UpdateProposal(ctx context.Context, proposalID uint, req request_models.UpdateProposalRequest) (*response_models.ProposalResponse, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	updated, err := s.lifecycle.SetStatus(ctx, proposalID, db_models.ProposalStatus(*req.Status))
	if err != nil {
		return nil, err
	}
	return buildProposal(updated), nil
}

func (s *ProposalService) SendProposal(ctx context.Context, proposalID uint) (*response_models.ProposalResponse, error) {
	updated, err := s.lifecycle.Send(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return buildProposal(updated), nil
}

// buildProposal derives totals from whatever items were loaded with p.
func buildProposal(p *db_models.Proposal) *response_models.ProposalResponse {
	totals := Summarize(p.Items)
	return response_models.BuildProposalResponse(p, response_models.Money(totals.TotalCost), totals.ItemCount)
}
