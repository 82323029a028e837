package services

import (
	"context"
	"strings"
	"time"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/internal/models/request_models"
	"concierge/internal/models/response_models"
	"concierge/internal/repositories"
	"concierge/pkg/utils"
	"go.uber.org/zap"
)

// CollectionServiceInterface manages a proposal's items and guests.
type CollectionServiceInterface interface {
	AddItem(ctx context.Context, proposalID uint, req request_models.AddProposalItemRequest) (*response_models.ProposalItemResponse, error)
	AddGuest(ctx context.Context, proposalID uint, req request_models.AddProposalGuestRequest) (*db_models.ProposalGuest, error)
	// RemoveGuest deletes the guest only if it belongs to proposalID.
	RemoveGuest(ctx context.Context, proposalID, guestID uint) error
	ListGuests(ctx context.Context, proposalID uint) ([]db_models.ProposalGuest, error)
}

type CollectionService struct {
	tx        infra.Transactor
	proposals repositories.ProposalRepository
	items     repositories.ProposalItemRepository
	guests    repositories.ProposalGuestRepository
	location  *time.Location
	logger    *zap.Logger
}

func NewCollectionService(
	tx infra.Transactor,
	proposals repositories.ProposalRepository,
	items repositories.ProposalItemRepository,
	guests repositories.ProposalGuestRepository,
	location *time.Location,
	logger *zap.Logger,
) CollectionServiceInterface {
	if location == nil {
		location = time.UTC
	}
	return &CollectionService{
		tx:        tx,
		proposals: proposals,
		items:     items,
		guests:    guests,
		location:  location,
		logger:    logger,
	}
}

func (s *CollectionService) AddItem(ctx context.Context, proposalID uint, req request_models.AddProposalItemRequest) (*response_models.ProposalItemResponse, error) {
	req.Category = strings.TrimSpace(req.Category)
	req.Title = strings.TrimSpace(req.Title)
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	scheduledAt, ok := utils.ParseScheduleTime(req.ScheduledAt, s.location)
	if !ok {
		return nil, utils.NewFieldError("scheduledAt", "must be a valid timestamp")
	}

	price := *req.Price
	if price.IsNegative() {
		return nil, utils.NewFieldError("price", "must not be negative")
	}
	if price.GreaterThan(db_models.MaxItemPrice) {
		return nil, utils.NewFieldError("price", "must not exceed "+db_models.MaxItemPrice.StringFixed(2))
	}
	if !price.Equal(price.Round(2)) {
		return nil, utils.NewFieldError("price", "must have at most two decimal places")
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	if !db_models.IsKnownCategory(req.Category) {
		s.logger.Debug("unlisted item category", zap.String("category", req.Category))
	}

	item := &db_models.ProposalItem{
		ProposalID:  proposalID,
		Category:    req.Category,
		Title:       req.Title,
		Description: description,
		ScheduledAt: scheduledAt,
		Price:       price,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.proposals.GetByID(ctx, proposalID); err != nil {
			return err
		}
		return s.items.Create(ctx, item)
	})
	if err != nil {
		return nil, storageErr(err)
	}

	out := response_models.BuildProposalItemResponse(item)
	return &out, nil
}

func (s *CollectionService) AddGuest(ctx context.Context, proposalID uint, req request_models.AddProposalGuestRequest) (*db_models.ProposalGuest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	guest := &db_models.ProposalGuest{
		ProposalID: proposalID,
		Name:       req.Name,
		Email:      req.Email,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.proposals.GetByID(ctx, proposalID); err != nil {
			return err
		}
		return s.guests.Create(ctx, guest)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return guest, nil
}

func (s *CollectionService) RemoveGuest(ctx context.Context, proposalID, guestID uint) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		guest, err := s.guests.GetByID(ctx, guestID)
		if err != nil {
			return err
		}
		if guest.ProposalID != proposalID {
			return utils.ErrGuestNotFound
		}
		return s.guests.Delete(ctx, guestID)
	})
	if err != nil {
		return storageErr(err)
	}

	s.logger.Info("guest removed",
		zap.Uint("proposal_id", proposalID),
		zap.Uint("guest_id", guestID))
	return nil
}

func (s *CollectionService) ListGuests(ctx context.Context, proposalID uint) ([]db_models.ProposalGuest, error) {
	guests, err := s.guests.ListByProposal(ctx, proposalID)
	if err != nil {
		return nil, storageErr(err)
	}
	return guests, nil
}
