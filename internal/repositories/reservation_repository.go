package repositories

import (
	"context"
	"errors"
	"fmt"

	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/pkg/utils"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *db_models.Reservation) error
	GetByID(ctx context.Context, id uint, includes ...Include) (*db_models.Reservation, error)
	List(ctx context.Context, includes ...Include) ([]db_models.Reservation, error)
	// Delete removes the reservation row only. It fails while proposals
	// still reference it.
	Delete(ctx context.Context, id uint) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *db_models.Reservation) error {
	switch {
	case reservation.MemberID == 0:
		return utils.NewFieldError("memberId", "is required")
	case reservation.Destination == "":
		return utils.NewFieldError("destination", "is required")
	case reservation.Villa == "":
		return utils.NewFieldError("villa", "is required")
	case reservation.ArrivalDate.IsZero() || reservation.DepartureDate.IsZero():
		return utils.NewFieldError("arrivalDate", "arrival and departure dates are required")
	case !reservation.ArrivalDate.Before(reservation.DepartureDate):
		return utils.NewFieldError("departureDate", "must be after arrivalDate")
	}
	return infra.Conn(ctx, r.db).Create(reservation).Error
}

func (r *reservationRepository) GetByID(ctx context.Context, id uint, includes ...Include) (*db_models.Reservation, error) {
	var reservation db_models.Reservation
	err := applyIncludes(infra.Conn(ctx, r.db), includes).First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) List(ctx context.Context, includes ...Include) ([]db_models.Reservation, error) {
	var reservations []db_models.Reservation
	err := applyIncludes(infra.Conn(ctx, r.db), includes).
		Order("arrival_date ASC, id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uint) error {
	res := infra.Conn(ctx, r.db).Delete(&db_models.Reservation{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete reservation %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrReservationNotFound
	}
	return nil
}
