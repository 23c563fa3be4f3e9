package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	OwnerID string `gorm:"size:36;not null;index" json:"owner_id"`
	Owner   Owner  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	SitterID string `gorm:"size:36;not null;index" json:"sitter_id"`
	Sitter   Sitter `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sitter"`

	ServiceID string  `gorm:"size:36;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	TotalPrice   float64 `gorm:"not null" json:"total_price"`
	Observations string  `gorm:"type:text" json:"observations"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Pets []Pet `gorm:"many2many:reservation_pets" json:"pets,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
