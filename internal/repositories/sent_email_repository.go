package repositories

import (
	"context"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/pkg/utils"
	"gorm.io/gorm"
)

// SentEmailRepository has no update path; rows only go away with their
// proposal.
type SentEmailRepository interface {
	Create(ctx context.Context, email *db_models.SentEmail) error
	ListByProposal(ctx context.Context, proposalID uint) ([]db_models.SentEmail, error)
	DeleteByProposalIDs(ctx context.Context, proposalIDs []uint) (int64, error)
}

type sentEmailRepository struct {
	db *gorm.DB
}

func NewSentEmailRepository(db *gorm.DB) SentEmailRepository {
	return &sentEmailRepository{db: db}
}

func (r *sentEmailRepository) Create(ctx context.Context, email *db_models.SentEmail) error {
	switch {
	case email.ProposalID == 0:
		return utils.NewFieldError("proposalId", "is required")
	case email.ToEmail == "":
		return utils.NewFieldError("toEmail", "is required")
	case email.SentAt.IsZero():
		return utils.NewFieldError("sentAt", "is required")
	}
	return infra.Conn(ctx, r.db).Create(email).Error
}

func (r *sentEmailRepository) ListByProposal(ctx context.Context, proposalID uint) ([]db_models.SentEmail, error) {
	var emails []db_models.SentEmail
	err := infra.Conn(ctx, r.db).
		Where("proposal_id = ?", proposalID).
		Order("sent_at ASC, id ASC").
		Find(&emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (r *sentEmailRepository) DeleteByProposalIDs(ctx context.Context, proposalIDs []uint) (int64, error) {
	if len(proposalIDs) == 0 {
		return 0, nil
	}
	res := infra.Conn(ctx, r.db).
		Where("proposal_id IN ?", proposalIDs).
		Delete(&db_models.SentEmail{})
	return res.RowsAffected, res.Error
}
