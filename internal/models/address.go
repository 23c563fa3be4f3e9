package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type City string

const (
	CityCuiaba       City = "CUIABA"
	CityVarzeaGrande City = "VARZEA_GRANDE"
)

func (c City) IsValid() bool {
	return c == CityCuiaba || c == CityVarzeaGrande
}

// Address pertence a exatamente um Owner ou um Sitter. A chave é o dono
// (owner_id / sitter_id únicos), não a tupla rua+número+cidade.
type Address struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Street       string `gorm:"size:150;not null" json:"street"`
	Number       string `gorm:"size:20;not null" json:"number"`
	Complement   string `gorm:"size:100" json:"complement"`
	Neighborhood string `gorm:"size:100" json:"neighborhood"`
	City         City   `gorm:"size:20;not null" json:"city"`
	ZipCode      string `gorm:"size:10" json:"zip_code"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	OwnerID  *string `gorm:"size:36;uniqueIndex" json:"owner_id,omitempty"`
	SitterID *string `gorm:"size:36;uniqueIndex" json:"sitter_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Display devolve o endereço no formato exibido ao usuário final:
// "{street}, {number} - {neighborhood}, {city}".
func (a *Address) Display() string {
	if a == nil {
		return "Endereço não informado"
	}
	return fmt.Sprintf("%s, %s - %s, %s", a.Street, a.Number, a.Neighborhood, a.City)
}
