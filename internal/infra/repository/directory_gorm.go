package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/petcaremt/petcare-api/internal/domain/directory"
	"github.com/petcaremt/petcare-api/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

// --------------------------------------------------
// List
// --------------------------------------------------

func (r *DirectoryGormRepository) ListActiveSitters(
	ctx context.Context,
	specialty string,
) ([]models.Sitter, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Sitter{}).
		Where("sitters.is_active = ?", true)

	specialty = strings.TrimSpace(strings.ToLower(specialty))
	if specialty != "" {
		like := "%" + specialty + "%"
		q = q.Where(
			`EXISTS (
				SELECT 1 FROM sitter_specialties ss
				JOIN specialties sp ON sp.id = ss.specialty_id
				WHERE ss.sitter_id = sitters.id AND LOWER(sp.name) LIKE ?
			)`,
			like,
		)
	}

	var sitters []models.Sitter
	if err := q.
		Preload("Address").
		Preload("Specialties").
		Preload("Services").
		Order("sitters.rating DESC").
		Find(&sitters).Error; err != nil {
		return nil, err
	}

	return sitters, nil
}

// --------------------------------------------------
// Detail
// --------------------------------------------------

func (r *DirectoryGormRepository) GetSitterByID(
	ctx context.Context,
	id string,
) (*models.Sitter, error) {

	var sitter models.Sitter
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Specialties").
		Preload("Services").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.Owner").
		Where("id = ?", id).
		First(&sitter).Error; err != nil {
		return nil, err
	}

	return &sitter, nil
}

// Compile-time check
var _ domain.Repository = (*DirectoryGormRepository)(nil)
