package directory

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/petcaremt/petcare-api/internal/domain/directory"
	"github.com/petcaremt/petcare-api/internal/dto"
	"github.com/petcaremt/petcare-api/internal/httperr"
)

// ======================================================
// USE CASE — DETAIL
// ======================================================

type GetCaregiver struct {
	repo domain.Repository
}

func NewGetCaregiver(repo domain.Repository) *GetCaregiver {
	return &GetCaregiver{repo: repo}
}

func (uc *GetCaregiver) Execute(
	ctx context.Context,
	id string,
) (*dto.CaregiverDetail, error) {

	sitter, err := uc.repo.GetSitterByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("sitter_not_found")
		}
		return nil, err
	}

	detail := dto.NewCaregiverDetail(sitter)
	return &detail, nil
}
