package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sitter struct {
	ID     string  `gorm:"primaryKey;size:36" json:"id"`
	UserID *string `gorm:"size:36;uniqueIndex" json:"user_id,omitempty"`

	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone      string `gorm:"size:20" json:"phone"`
	Bio        string `gorm:"type:text" json:"bio"`
	Experience string `gorm:"type:text" json:"experience"`

	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	HourlyRate *float64 `json:"hourly_rate"`
	DayRate    *float64 `json:"day_rate"`
	WeekRate   *float64 `json:"week_rate"`
	MonthRate  *float64 `json:"month_rate"`

	Avatar   string `gorm:"size:255" json:"avatar"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Address     *Address    `gorm:"foreignKey:SitterID" json:"address,omitempty"`
	Specialties []Specialty `gorm:"many2many:sitter_specialties" json:"specialties,omitempty"`
	Services    []Service   `gorm:"many2many:sitter_services" json:"services,omitempty"`
	Reviews     []Review    `gorm:"foreignKey:SitterID" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Sitter) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
