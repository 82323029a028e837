package db_models

import "time"

type Reservation struct {
	BaseModel
	MemberID      uint      `gorm:"not null;index" json:"memberId"`
	Destination   string    `gorm:"size:255;not null" json:"destination"`
	Villa         string    `gorm:"size:255;not null" json:"villa"`
	ArrivalDate   time.Time `gorm:"not null" json:"arrivalDate"`
	DepartureDate time.Time `gorm:"not null" json:"departureDate"`

	Member    *Member    `json:"member,omitempty"`
	Proposals []Proposal `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"proposals,omitempty"`
}
