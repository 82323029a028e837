package response_models

import (
	"time"

	"concierge/internal/models/db_models"
)

type ProposalResponse struct {
	ID            uint                     `json:"id"`
	ReservationID uint                     `json:"reservationId"`
	Status        db_models.ProposalStatus `json:"status"`
	SentAt        *time.Time               `json:"sentAt"`
	ApprovedAt    *time.Time               `json:"approvedAt"`
	PaidAt        *time.Time               `json:"paidAt"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`

	// Derived from Items on every read. Zero when items were not loaded.
	TotalCost Money `json:"totalCost"`
	ItemCount int   `json:"itemCount"`

	Reservation *ReservationSummary    `json:"reservation,omitempty"`
	Items       []ProposalItemResponse `json:"items"`

	// Set only by reads that load them; an empty collection renders as [].
	Guests     *[]db_models.ProposalGuest `json:"guests,omitempty"`
	SentEmails *[]db_models.SentEmail     `json:"sentEmails,omitempty"`
}

type ProposalItemResponse struct {
	ID          uint      `json:"id"`
	ProposalID  uint      `json:"proposalId"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Price       Money     `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

func BuildProposalItemResponse(item *db_models.ProposalItem) ProposalItemResponse {
	return ProposalItemResponse{
		ID:          item.ID,
		ProposalID:  item.ProposalID,
		Category:    item.Category,
		Title:       item.Title,
		Description: item.Description,
		ScheduledAt: item.ScheduledAt,
		Price:       Money(item.Price),
		CreatedAt:   item.CreatedAt,
	}
}

// BuildProposalResponse copies p and the totals computed for it. Items always
// render as an array; the reservation only when it was loaded.
func BuildProposalResponse(p *db_models.Proposal, total Money, itemCount int) *ProposalResponse {
	out := &ProposalResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Status:        p.Status,
		SentAt:        p.SentAt,
		ApprovedAt:    p.ApprovedAt,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		TotalCost:     total,
		ItemCount:     itemCount,
		Items:         make([]ProposalItemResponse, 0, len(p.Items)),
	}

	if p.Reservation != nil {
		out.Reservation = BuildReservationSummary(p.Reservation)
	}
	for i := range p.Items {
		out.Items = append(out.Items, BuildProposalItemResponse(&p.Items[i]))
	}
	return out
}

// WithCollections attaches guests and sent emails. Nil slices become empty
// ones so both keys are always present on a detail read.
func (r *ProposalResponse) WithCollections(guests []db_models.ProposalGuest, sentEmails []db_models.SentEmail) *ProposalResponse {
	if guests == nil {
		guests = []db_models.ProposalGuest{}
	}
	if sentEmails == nil {
		sentEmails = []db_models.SentEmail{}
	}
	r.Guests = &guests
	r.SentEmails = &sentEmails
	return r
}
