package directory

import (
	"context"

	"github.com/petcaremt/petcare-api/internal/models"
)

type Repository interface {
	// ListActiveSitters devolve os cuidadores visíveis no diretório,
	// ordenados por rating decrescente. specialty filtra por substring
	// (case-insensitive) nos nomes das especialidades; vazio não filtra.
	ListActiveSitters(
		ctx context.Context,
		specialty string,
	) ([]models.Sitter, error)

	// GetSitterByID carrega um cuidador com endereço, especialidades,
	// serviços e avaliações (mais recentes primeiro).
	GetSitterByID(
		ctx context.Context,
		id string,
	) (*models.Sitter, error)
}
