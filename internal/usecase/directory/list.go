package directory

import (
	"context"

	domain "github.com/petcaremt/petcare-api/internal/domain/directory"
	"github.com/petcaremt/petcare-api/internal/dto"
)

// ======================================================
// USE CASE — LIST
// ======================================================

type ListCaregivers struct {
	repo domain.Repository
}

func NewListCaregivers(repo domain.Repository) *ListCaregivers {
	return &ListCaregivers{repo: repo}
}

// Execute monta o diretório de cuidadores visível ao usuário final.
// serviceType filtra por substring nas especialidades; location é aceito
// mas ainda não aplicado (a busca cobre uma única região metropolitana).
func (uc *ListCaregivers) Execute(
	ctx context.Context,
	serviceType string,
	location string,
) ([]dto.Caregiver, error) {

	_ = location

	sitters, err := uc.repo.ListActiveSitters(ctx, serviceType)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Caregiver, 0, len(sitters))
	for i := range sitters {
		out = append(out, dto.NewCaregiver(&sitters[i]))
	}

	return out, nil
}
