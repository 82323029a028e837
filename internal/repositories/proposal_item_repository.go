package repositories

import (
	"context"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/pkg/utils"
	"gorm.io/gorm"
)

type ProposalItemRepository interface {
	Create(ctx context.Context, item *db_models.ProposalItem) error
	ListByProposal(ctx context.Context, proposalID uint) ([]db_models.ProposalItem, error)
	DeleteByProposalIDs(ctx context.Context, proposalIDs []uint) (int64, error)
}

type proposalItemRepository struct {
	db *gorm.DB
}

func NewProposalItemRepository(db *gorm.DB) ProposalItemRepository {
	return &proposalItemRepository{db: db}
}

func (r *proposalItemRepository) Create(ctx context.Context, item *db_models.ProposalItem) error {
	switch {
	case item.ProposalID == 0:
		return utils.NewFieldError("proposalId", "is required")
	case item.Category == "":
		return utils.NewFieldError("category", "is required")
	case item.Title == "":
		return utils.NewFieldError("title", "is required")
	case item.ScheduledAt.IsZero():
		return utils.NewFieldError("scheduledAt", "is required")
	case item.Price.IsNegative():
		return utils.NewFieldError("price", "must not be negative")
	case item.Price.GreaterThan(db_models.MaxItemPrice):
		return utils.NewFieldError("price", "exceeds the price column range")
	}
	return infra.Conn(ctx, r.db).Create(item).Error
}

func (r *proposalItemRepository) ListByProposal(ctx context.Context, proposalID uint) ([]db_models.ProposalItem, error) {
	var items []db_models.ProposalItem
	err := infra.Conn(ctx, r.db).
		Where("proposal_id = ?", proposalID).
		Order("scheduled_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *proposalItemRepository) DeleteByProposalIDs(ctx context.Context, proposalIDs []uint) (int64, error) {
	if len(proposalIDs) == 0 {
		return 0, nil
	}
	res := infra.Conn(ctx, r.db).
		Where("proposal_id IN ?", proposalIDs).
		Delete(&db_models.ProposalItem{})
	return res.RowsAffected, res.Error
}
