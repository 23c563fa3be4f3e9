package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cada reserva cria um novo Pet para o Owner; não há deduplicação por nome.
type Pet struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID string `gorm:"size:36;not null;index" json:"owner_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Kind        string `gorm:"size:50;not null" json:"kind"`
	Age         *int   `json:"age"`
	Comorbidity string `gorm:"type:text" json:"comorbidity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
