package reservation

import (
	"context"

	"github.com/petcaremt/petcare-api/internal/audit"
	domain "github.com/petcaremt/petcare-api/internal/domain/reservation"
	"github.com/petcaremt/petcare-api/internal/dto"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela uma reserva PENDING ou CONFIRMED do cuidador logado.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	userID string,
	reservationID string,
) (*dto.Reservation, error) {

	res, err := reservationForSitter(ctx, uc.repo, userID, reservationID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(res); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	out := dto.NewReservation(res)
	return &out, nil
}
