package reservation

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/petcaremt/petcare-api/internal/audit"
	domain "github.com/petcaremt/petcare-api/internal/domain/reservation"
	"github.com/petcaremt/petcare-api/internal/dto"
	"github.com/petcaremt/petcare-api/internal/httperr"
	"github.com/petcaremt/petcare-api/internal/models"
	"github.com/petcaremt/petcare-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	OwnerName  string
	OwnerEmail string
	OwnerPhone string

	PetName string
	PetType string
	PetAge  *int

	ServiceType string

	StartDate string
	EndDate   string

	// Aceito no payload mas sem efeito no preço: a reserva custa o preço
	// cheio do serviço independente da duração.
	Duration *int

	SpecialRequirements string

	// Somente UI; não persiste.
	EmergencyContact string

	SitterID string
}

func (in *CreateReservationInput) validate() error {
	required := []string{
		in.OwnerName,
		in.OwnerEmail,
		in.OwnerPhone,
		in.PetName,
		in.PetType,
		in.ServiceType,
		in.StartDate,
		in.SitterID,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return httperr.ErrBusiness("missing_required_fields")
		}
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*dto.Reservation, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios
	// --------------------------------------------------
	if err := in.validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Datas no fuso da região
	// --------------------------------------------------
	start, err := timezone.ParseDate(in.StartDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	end := start
	if in.EndDate != "" {
		end, err = timezone.ParseDate(in.EndDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	// --------------------------------------------------
	// 3. Cuidador (nenhuma escrita antes desta checagem)
	// --------------------------------------------------
	sitter, err := uc.repo.GetSitterByID(ctx, in.SitterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("sitter_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Unidade atômica: owner + serviço + pet + reserva.
	// Qualquer falha desfaz tudo — sem Owner órfão nem Pet sem reserva.
	// --------------------------------------------------
	var reservationID string

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		email := strings.ToLower(strings.TrimSpace(in.OwnerEmail))

		owner, err := tx.GetOwnerByEmail(ctx, email)
		switch {
		case err == nil:
			// last-write-wins, sem detecção de conflito
			owner.Name = in.OwnerName
			owner.Phone = in.OwnerPhone
			if err := tx.UpdateOwner(ctx, owner); err != nil {
				return err
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			owner = &models.Owner{
				Name:    in.OwnerName,
				Email:   email,
				Phone:   in.OwnerPhone,
				Address: placeholderAddress(),
			}
			if err := tx.CreateOwner(ctx, owner); err != nil {
				return err
			}

		default:
			return err
		}

		svc, err := tx.FindActiveService(ctx, in.ServiceType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("service_not_found")
			}
			return err
		}

		pet := &models.Pet{
			OwnerID:     owner.ID,
			Name:        in.PetName,
			Kind:        in.PetType,
			Age:         in.PetAge,
			Comorbidity: in.SpecialRequirements,
		}
		if err := tx.CreatePet(ctx, pet); err != nil {
			return err
		}

		res := &models.Reservation{
			OwnerID:      owner.ID,
			SitterID:     sitter.ID,
			ServiceID:    svc.ID,
			StartDate:    start,
			EndDate:      end,
			TotalPrice:   svc.Price,
			Observations: in.SpecialRequirements,
			Status:       string(domain.InitialStatus()),
		}
		if err := tx.CreateReservation(ctx, res); err != nil {
			return err
		}

		if err := tx.AttachPet(ctx, res, pet); err != nil {
			return err
		}

		reservationID = res.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Resposta hidratada + auditoria
	// --------------------------------------------------
	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	out := dto.NewReservation(res)
	return &out, nil
}

func placeholderAddress() *models.Address {
	return &models.Address{
		Street:       "Endereço não informado",
		Number:       "0",
		Neighborhood: "Não informado",
		City:         models.CityCuiaba,
		ZipCode:      "78000-000",
	}
}
