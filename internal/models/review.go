package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	SitterID string `gorm:"size:36;not null;index" json:"sitter_id"`
	OwnerID  string `gorm:"size:36;not null" json:"owner_id"`
	Owner    Owner  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	Rating  float64 `gorm:"not null" json:"rating"`
	Comment string  `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
