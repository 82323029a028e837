package request_models

import "github.com/shopspring/decimal"

type CreateProposalRequest struct {
	ReservationID *uint `json:"reservationId" validate:"required,gt=0"`
}

// UpdateProposalRequest is the PATCH body. Only status is updatable.
type UpdateProposalRequest struct {
	Status *string `json:"status" validate:"required"`
}

type AddProposalItemRequest struct {
	Category    string           `json:"category" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	Description *string          `json:"description"`
	ScheduledAt string           `json:"scheduledAt" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
}

type AddProposalGuestRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}
