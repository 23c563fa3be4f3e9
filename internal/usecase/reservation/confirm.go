package reservation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/petcaremt/petcare-api/internal/audit"
	domain "github.com/petcaremt/petcare-api/internal/domain/reservation"
	"github.com/petcaremt/petcare-api/internal/dto"
	"github.com/petcaremt/petcare-api/internal/httperr"
	"github.com/petcaremt/petcare-api/internal/models"
)

type ConfirmReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmReservation {
	return &ConfirmReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute confirma uma reserva PENDING. Somente o cuidador da reserva
// pode confirmá-la.
func (uc *ConfirmReservation) Execute(
	ctx context.Context,
	userID string,
	reservationID string,
) (*dto.Reservation, error) {

	res, err := reservationForSitter(ctx, uc.repo, userID, reservationID)
	if err != nil {
		return nil, err
	}

	if err := domain.Confirm(res); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_confirmed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	out := dto.NewReservation(res)
	return &out, nil
}

// reservationForSitter resolve o perfil de cuidador do usuário logado e
// garante que a reserva pertence a ele.
func reservationForSitter(
	ctx context.Context,
	repo domain.Repository,
	userID string,
	reservationID string,
) (*models.Reservation, error) {

	sitter, err := repo.GetSitterByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("sitter_profile_not_found")
		}
		return nil, err
	}

	res, err := repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, err
	}

	if res.SitterID != sitter.ID {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	return res, nil
}
