package reservation

import (
	"context"

	"github.com/petcaremt/petcare-api/internal/models"
)

type Repository interface {
	// Transaction executa fn dentro de uma transação; o Repository
	// recebido opera sobre ela. Qualquer erro desfaz todas as escritas.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// -------- Sitter --------
	GetSitterByID(
		ctx context.Context,
		id string,
	) (*models.Sitter, error)

	GetSitterByUserID(
		ctx context.Context,
		userID string,
	) (*models.Sitter, error)

	// -------- Owner --------
	GetOwnerByEmail(
		ctx context.Context,
		email string,
	) (*models.Owner, error)

	CreateOwner(
		ctx context.Context,
		owner *models.Owner,
	) error

	UpdateOwner(
		ctx context.Context,
		owner *models.Owner,
	) error

	// -------- Service --------
	FindActiveService(
		ctx context.Context,
		serviceType string,
	) (*models.Service, error)

	// -------- Pet --------
	CreatePet(
		ctx context.Context,
		pet *models.Pet,
	) error

	// -------- Reservation --------
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	AttachPet(
		ctx context.Context,
		res *models.Reservation,
		pet *models.Pet,
	) error

	GetReservationByID(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	ListReservations(
		ctx context.Context,
		ownerEmail string,
		sitterID string,
	) ([]models.Reservation, error)
}
