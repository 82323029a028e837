package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/pkg/utils"
	"gorm.io/gorm"
)

type ProposalRepository interface {
	Create(ctx context.Context, proposal *db_models.Proposal) error
	GetByID(ctx context.Context, id uint, includes ...Include) (*db_models.Proposal, error)
	// List returns proposals newest first.
	List(ctx context.Context, includes ...Include) ([]db_models.Proposal, error)
	ListIDsByReservation(ctx context.Context, reservationID uint) ([]uint, error)
	// UpdateStatus writes the status and any non-nil timestamps in a single
	// UPDATE statement.
	UpdateStatus(ctx context.Context, id uint, update StatusUpdate) error
	DeleteByReservation(ctx context.Context, reservationID uint) (int64, error)
}

type StatusUpdate struct {
	Status     db_models.ProposalStatus
	SentAt     *time.Time
	ApprovedAt *time.Time
	PaidAt     *time.Time
}

type proposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *db_models.Proposal) error {
	if proposal.ReservationID == 0 {
		return utils.NewFieldError("reservationId", "is required")
	}
	if proposal.Status == "" {
		proposal.Status = db_models.ProposalStatusDraft
	}
	if !proposal.Status.Valid() {
		return utils.NewFieldError("status", fmt.Sprintf("unknown status %q", proposal.Status))
	}
	return infra.Conn(ctx, r.db).Create(proposal).Error
}

func (r *proposalRepository) GetByID(ctx context.Context, id uint, includes ...Include) (*db_models.Proposal, error) {
	var proposal db_models.Proposal
	err := applyIncludes(infra.Conn(ctx, r.db), includes).First(&proposal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) List(ctx context.Context, includes ...Include) ([]db_models.Proposal, error) {
	var proposals []db_models.Proposal
	err := applyIncludes(infra.Conn(ctx, r.db), includes).
		Order("created_at DESC, id DESC").
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *proposalRepository) ListIDsByReservation(ctx context.Context, reservationID uint) ([]uint, error) {
	var ids []uint
	err := infra.Conn(ctx, r.db).
		Model(&db_models.Proposal{}).
		Where("reservation_id = ?", reservationID).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *proposalRepository) UpdateStatus(ctx context.Context, id uint, update StatusUpdate) error {
	if !update.Status.Valid() {
		return utils.NewFieldError("status", fmt.Sprintf("unknown status %q", update.Status))
	}

	fields := map[string]interface{}{"status": update.Status}
	if update.SentAt != nil {
		fields["sent_at"] = *update.SentAt
	}
	if update.ApprovedAt != nil {
		fields["approved_at"] = *update.ApprovedAt
	}
	if update.PaidAt != nil {
		fields["paid_at"] = *update.PaidAt
	}

	res := infra.Conn(ctx, r.db).
		Model(&db_models.Proposal{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrProposalNotFound
	}
	return nil
}

func (r *proposalRepository) DeleteByReservation(ctx context.Context, reservationID uint) (int64, error) {
	res := infra.Conn(ctx, r.db).
		Where("reservation_id = ?", reservationID).
		Delete(&db_models.Proposal{})
	return res.RowsAffected, res.Error
}
