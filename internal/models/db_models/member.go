package db_models

type Member struct {
	BaseModel
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;not null;index" json:"email"`

	Reservations []Reservation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"reservations,omitempty"`
}
