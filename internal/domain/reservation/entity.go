package reservation

import "github.com/petcaremt/petcare-api/internal/models"

// ===============================
// Domain Actions
// ===============================

func Confirm(r *models.Reservation) error {
	if err := CanConfirm(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusConfirmed)
	return nil
}

func Cancel(r *models.Reservation) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	return nil
}
