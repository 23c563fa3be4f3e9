package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeOwner  UserType = "OWNER"
	UserTypeSitter UserType = "SITTER"
)

func (t UserType) IsValid() bool {
	return t == UserTypeOwner || t == UserTypeSitter
}

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	UserType     UserType `gorm:"size:10;not null" json:"user_type"`
	Avatar       string   `gorm:"size:255" json:"avatar"`

	Owner  *Owner  `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Sitter *Sitter `gorm:"foreignKey:UserID" json:"sitter,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
