package db_models

import "time"

// SentEmail is the audit record written each time a proposal is sent.
// Rows are append-only.
type SentEmail struct {
	BaseModel
	ProposalID  uint      `gorm:"not null;index" json:"proposalId"`
	SentAt      time.Time `gorm:"not null" json:"sentAt"`
	Subject     string    `gorm:"size:255;not null" json:"subject"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	BodyPreview string    `gorm:"size:255;not null" json:"bodyPreview"`
	ToEmail     string    `gorm:"size:255;not null" json:"toEmail"`
}
