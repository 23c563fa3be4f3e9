package reservation

import (
	"context"

	domain "github.com/petcaremt/petcare-api/internal/domain/reservation"
	"github.com/petcaremt/petcare-api/internal/dto"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Execute lista reservas, opcionalmente filtradas por email do tutor ou
// id do cuidador, mais recentes primeiro.
func (uc *ListReservations) Execute(
	ctx context.Context,
	ownerEmail string,
	sitterID string,
) ([]dto.Reservation, error) {

	reservations, err := uc.repo.ListReservations(ctx, ownerEmail, sitterID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Reservation, 0, len(reservations))
	for i := range reservations {
		out = append(out, dto.NewReservation(&reservations[i]))
	}

	return out, nil
}
