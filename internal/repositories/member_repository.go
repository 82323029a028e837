package repositories

import (
	"context"
	"errors"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/pkg/utils"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(ctx context.Context, member *db_models.Member) error
	GetByID(ctx context.Context, id uint) (*db_models.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *db_models.Member) error {
	if member.Name == "" || member.Email == "" {
		return utils.NewFieldError("member", "name and email are required")
	}
	return infra.Conn(ctx, r.db).Create(member).Error
}

func (r *memberRepository) GetByID(ctx context.Context, id uint) (*db_models.Member, error) {
	var member db_models.Member
	if err := infra.Conn(ctx, r.db).First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}
