package db_models

type ProposalGuest struct {
	BaseModel
	ProposalID uint   `gorm:"not null;index" json:"proposalId"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Email      string `gorm:"size:255;not null" json:"email"`
}
