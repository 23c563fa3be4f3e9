package dto

import (
	"time"

	"github.com/petcaremt/petcare-api/internal/models"
)

type ReservationParty struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ReservationService struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ServiceType string  `json:"serviceType"`
}

type ReservationPet struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Age  *int   `json:"age"`
}

type Reservation struct {
	ID           string             `json:"id"`
	StartDate    time.Time          `json:"startDate"`
	EndDate      time.Time          `json:"endDate"`
	Status       string             `json:"status"`
	TotalPrice   float64            `json:"totalPrice"`
	Observations string             `json:"observations"`
	Owner        ReservationParty   `json:"owner"`
	Sitter       ReservationParty   `json:"sitter"`
	Service      ReservationService `json:"service"`
	Pets         []ReservationPet   `json:"pets"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func NewReservation(r *models.Reservation) Reservation {
	pets := make([]ReservationPet, 0, len(r.Pets))
	for _, p := range r.Pets {
		pets = append(pets, ReservationPet{
			Name: p.Name,
			Kind: p.Kind,
			Age:  p.Age,
		})
	}

	return Reservation{
		ID:           r.ID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Status:       r.Status,
		TotalPrice:   r.TotalPrice,
		Observations: r.Observations,
		Owner: ReservationParty{
			ID:      r.Owner.ID,
			Name:    r.Owner.Name,
			Email:   r.Owner.Email,
			Phone:   r.Owner.Phone,
			Address: r.Owner.Address.Display(),
		},
		Sitter: ReservationParty{
			ID:      r.Sitter.ID,
			Name:    r.Sitter.Name,
			Email:   r.Sitter.Email,
			Phone:   r.Sitter.Phone,
			Address: r.Sitter.Address.Display(),
		},
		Service: ReservationService{
			Name:        r.Service.Name,
			Price:       r.Service.Price,
			ServiceType: r.Service.ServiceType.Name,
		},
		Pets:      pets,
		CreatedAt: r.CreatedAt,
	}
}
