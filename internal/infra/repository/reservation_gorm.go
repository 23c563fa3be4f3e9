package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/petcaremt/petcare-api/internal/domain/reservation"
	"github.com/petcaremt/petcare-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *ReservationGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Sitter
// --------------------------------------------------

func (r *ReservationGormRepository) GetSitterByID(
	ctx context.Context,
	id string,
) (*models.Sitter, error) {

	var sitter models.Sitter
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Where("id = ?", id).
		First(&sitter).Error; err != nil {
		return nil, err
	}
	return &sitter, nil
}

func (r *ReservationGormRepository) GetSitterByUserID(
	ctx context.Context,
	userID string,
) (*models.Sitter, error) {

	var sitter models.Sitter
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&sitter).Error; err != nil {
		return nil, err
	}
	return &sitter, nil
}

// --------------------------------------------------
// Owner
// --------------------------------------------------

func (r *ReservationGormRepository) GetOwnerByEmail(
	ctx context.Context,
	email string,
) (*models.Owner, error) {

	var owner models.Owner
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ReservationGormRepository) CreateOwner(
	ctx context.Context,
	owner *models.Owner,
) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ReservationGormRepository) UpdateOwner(
	ctx context.Context,
	owner *models.Owner,
) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

// --------------------------------------------------
// Service
// --------------------------------------------------

// FindActiveService resolve o serviço da reserva: primeiro por nome exato
// de tipo de serviço (o caminho enumerado), depois por substring no nome
// do serviço para entradas legadas. O primeiro match por nome vence.
func (r *ReservationGormRepository) FindActiveService(
	ctx context.Context,
	serviceType string,
) (*models.Service, error) {

	lower := strings.TrimSpace(strings.ToLower(serviceType))

	var svc models.Service
	err := r.db.WithContext(ctx).
		Preload("ServiceType").
		Joins("JOIN service_types ON service_types.id = services.service_type_id").
		Where("services.is_active = ? AND LOWER(service_types.name) = ?", true, lower).
		Order("services.name ASC").
		First(&svc).Error

	if err == nil {
		return &svc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	like := "%" + lower + "%"
	if err := r.db.WithContext(ctx).
		Preload("ServiceType").
		Where("is_active = ? AND LOWER(name) LIKE ?", true, like).
		Order("name ASC").
		First(&svc).Error; err != nil {
		return nil, err
	}

	return &svc, nil
}

// --------------------------------------------------
// Pet
// --------------------------------------------------

func (r *ReservationGormRepository) CreatePet(
	ctx context.Context,
	pet *models.Pet,
) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).
		Omit("Owner", "Sitter", "Service", "Pets").
		Create(res).Error
}

func (r *ReservationGormRepository) AttachPet(
	ctx context.Context,
	res *models.Reservation,
	pet *models.Pet,
) error {
	return r.db.WithContext(ctx).
		Model(res).
		Omit("Pets.*").
		Association("Pets").
		Append(pet)
}

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Owner.Address").
		Preload("Sitter").
		Preload("Sitter.Address").
		Preload("Service").
		Preload("Service.ServiceType").
		Preload("Pets").
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).
		Omit("Owner", "Sitter", "Service", "Pets").
		Save(res).Error
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	ownerEmail string,
	sitterID string,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).Model(&models.Reservation{})

	if ownerEmail != "" {
		q = q.Where(
			"owner_id IN (SELECT id FROM owners WHERE email = ?)",
			strings.TrimSpace(strings.ToLower(ownerEmail)),
		)
	}
	if sitterID != "" {
		q = q.Where("sitter_id = ?", sitterID)
	}

	var out []models.Reservation
	if err := q.
		Preload("Owner").
		Preload("Owner.Address").
		Preload("Sitter").
		Preload("Sitter.Address").
		Preload("Service").
		Preload("Service.ServiceType").
		Preload("Pets").
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
