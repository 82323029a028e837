package repositories

import (
	"context"
	"errors"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/pkg/utils"
	"gorm.io/gorm"
)

type ProposalGuestRepository interface {
	Create(ctx context.Context, guest *db_models.ProposalGuest) error
	GetByID(ctx context.Context, id uint) (*db_models.ProposalGuest, error)
	// ListByProposal returns guests oldest first.
	ListByProposal(ctx context.Context, proposalID uint) ([]db_models.ProposalGuest, error)
	Delete(ctx context.Context, id uint) error
	DeleteByProposalIDs(ctx context.Context, proposalIDs []uint) (int64, error)
}

type proposalGuestRepository struct {
	db *gorm.DB
}

func NewProposalGuestRepository(db *gorm.DB) ProposalGuestRepository {
	return &proposalGuestRepository{db: db}
}

func (r *proposalGuestRepository) Create(ctx context.Context, guest *db_models.ProposalGuest) error {
	switch {
	case guest.ProposalID == 0:
		return utils.NewFieldError("proposalId", "is required")
	case guest.Name == "":
		return utils.NewFieldError("name", "is required")
	case guest.Email == "":
		return utils.NewFieldError("email", "is required")
	}
	return infra.Conn(ctx, r.db).Create(guest).Error
}

func (r *proposalGuestRepository) GetByID(ctx context.Context, id uint) (*db_models.ProposalGuest, error) {
	var guest db_models.ProposalGuest
	if err := infra.Conn(ctx, r.db).First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrGuestNotFound
		}
		return nil, err
	}
	return &guest, nil
}

func (r *proposalGuestRepository) ListByProposal(ctx context.Context, proposalID uint) ([]db_models.ProposalGuest, error) {
	var guests []db_models.ProposalGuest
	err := infra.Conn(ctx, r.db).
		Where("proposal_id = ?", proposalID).
		Order("created_at ASC, id ASC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *proposalGuestRepository) Delete(ctx context.Context, id uint) error {
	res := infra.Conn(ctx, r.db).Delete(&db_models.ProposalGuest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrGuestNotFound
	}
	return nil
}

func (r *proposalGuestRepository) DeleteByProposalIDs(ctx context.Context, proposalIDs []uint) (int64, error) {
	if len(proposalIDs) == 0 {
		return 0, nil
	}
	res := infra.Conn(ctx, r.db).
		Where("proposal_id IN ?", proposalIDs).
		Delete(&db_models.ProposalGuest{})
	return res.RowsAffected, res.Error
}
