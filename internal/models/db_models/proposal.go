package db_models

import "time"

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "DRAFT"
	ProposalStatusSent     ProposalStatus = "SENT"
	ProposalStatusApproved ProposalStatus = "APPROVED"
	ProposalStatusPaid     ProposalStatus = "PAID"
)

var ProposalStatuses = []ProposalStatus{
	ProposalStatusDraft,
	ProposalStatusSent,
	ProposalStatusApproved,
	ProposalStatusPaid,
}

func (s ProposalStatus) Valid() bool {
	for _, v := range ProposalStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Proposal struct {
	BaseModel
	ReservationID uint           `gorm:"not null;index" json:"reservationId"`
	Status        ProposalStatus `gorm:"size:16;not null;default:DRAFT;index" json:"status"`
	SentAt        *time.Time     `json:"sentAt"`
	ApprovedAt    *time.Time     `json:"approvedAt"`
	PaidAt        *time.Time     `json:"paidAt"`

	Reservation *Reservation    `json:"reservation,omitempty"`
	Items       []ProposalItem  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"items,omitempty"`
	Guests      []ProposalGuest `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"guests,omitempty"`
	SentEmails  []SentEmail     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"sentEmails,omitempty"`
}
