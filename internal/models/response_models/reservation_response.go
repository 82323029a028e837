package response_models

import (
	"time"

	"concierge/internal/models/db_models"
)

type MemberResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReservationSummary struct {
	ID            uint            `json:"id"`
	MemberID      uint            `json:"memberId"`
	Destination   string          `json:"destination"`
	Villa         string          `json:"villa"`
	ArrivalDate   time.Time       `json:"arrivalDate"`
	DepartureDate time.Time       `json:"departureDate"`
	Member        *MemberResponse `json:"member,omitempty"`
}

type ReservationResponse struct {
	ReservationSummary
	Proposals []ProposalResponse `json:"proposals"`
}

func BuildReservationSummary(r *db_models.Reservation) *ReservationSummary {
	out := &ReservationSummary{
		ID:            r.ID,
		MemberID:      r.MemberID,
		Destination:   r.Destination,
		Villa:         r.Villa,
		ArrivalDate:   r.ArrivalDate,
		DepartureDate: r.DepartureDate,
	}
	if r.Member != nil {
		out.Member = &MemberResponse{
			ID:    r.Member.ID,
			Name:  r.Member.Name,
			Email: r.Member.Email,
		}
	}
	return out
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
