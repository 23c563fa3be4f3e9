package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domaindir "github.com/petcaremt/petcare-api/internal/domain/directory"
	"github.com/petcaremt/petcare-api/internal/httperr"
	infraRepo "github.com/petcaremt/petcare-api/internal/infra/repository"
	"github.com/petcaremt/petcare-api/internal/models"
	"github.com/petcaremt/petcare-api/internal/testutils"
	ucDirectory "github.com/petcaremt/petcare-api/internal/usecase/directory"
)

func newSitter(t *testing.T, db *gorm.DB, s models.Sitter) *models.Sitter {
	t.Helper()
	require.NoError(t, db.Create(&s).Error)
	return &s
}

func TestListCaregivers(t *testing.T) {
	db := testutils.NewTestDB(t)
	uc := ucDirectory.NewListCaregivers(infraRepo.NewDirectoryGormRepository(db))

	day := 80.0
	hour := 45.0

	newSitter(t, db, models.Sitter{
		Name: "Ana Silva", Email: "ana@email.com", Rating: 4.8,
		DayRate: &day, HourlyRate: &hour, IsActive: true,
	})
	newSitter(t, db, models.Sitter{
		Name: "Carlos Santos", Email: "carlos@email.com", Rating: 4.9,
		IsActive: true,
	})
	newSitter(t, db, models.Sitter{
		Name: "Desativado", Email: "off@email.com", Rating: 5.0,
		IsActive: false,
	})

	out, err := uc.Execute(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, out, 2, "cuidadores inativos não aparecem no diretório")

	// Ordenado por avaliação, da maior para a menor.
	assert.Equal(t, "Carlos Santos", out[0].Name)
	assert.Equal(t, "Ana Silva", out[1].Name)

	// A diária vence a tarifa por hora na exibição.
	assert.Equal(t, "R$ 80.00/dia", out[1].Price)
	// Sem nenhuma tarifa, vale o preço padrão.
	assert.Equal(t, domaindir.FallbackPrice, out[0].Price)

	// Campos derivados de cadastro vazio recebem os defaults de exibição.
	assert.Equal(t, domaindir.DefaultType, out[0].Type)
	assert.Equal(t, domaindir.PlaceholderImage, out[0].Image)
	assert.Equal(t, domaindir.MockDistance, out[0].Distance)
}

func TestListCaregiversSpecialtyFilter(t *testing.T) {
	db := testutils.NewTestDB(t)
	uc := ucDirectory.NewListCaregivers(infraRepo.NewDirectoryGormRepository(db))

	passeio := models.Specialty{Name: "Passeio"}
	gatos := models.Specialty{Name: "Gatos"}
	require.NoError(t, db.Create(&passeio).Error)
	require.NoError(t, db.Create(&gatos).Error)

	walker := newSitter(t, db, models.Sitter{
		Name: "João Costa", Email: "joao@email.com", IsActive: true,
	})
	catSitter := newSitter(t, db, models.Sitter{
		Name: "Maria Oliveira", Email: "maria@email.com", IsActive: true,
	})
	require.NoError(t, db.Model(walker).Association("Specialties").Append(&passeio))
	require.NoError(t, db.Model(catSitter).Association("Specialties").Append(&gatos))

	out, err := uc.Execute(context.Background(), "passeio", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "João Costa", out[0].Name)

	// location é aceito mas não restringe o resultado.
	out, err = uc.Execute(context.Background(), "", "Cuiabá")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = uc.Execute(context.Background(), "adestramento", "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetCaregiver(t *testing.T) {
	db := testutils.NewTestDB(t)
	uc := ucDirectory.NewGetCaregiver(infraRepo.NewDirectoryGormRepository(db))

	sitter := newSitter(t, db, models.Sitter{
		Name: "Ana Silva", Email: "ana@email.com", Phone: "(65) 99999-1111",
		IsActive: true,
	})

	addr := models.Address{
		Street: "Rua das Flores", Number: "123", Neighborhood: "Centro",
		City: models.CityCuiaba, ZipCode: "78005-100", SitterID: &sitter.ID,
	}
	require.NoError(t, db.Create(&addr).Error)

	owner := models.Owner{Name: "Pedro Souza", Email: "pedro@email.com"}
	require.NoError(t, db.Create(&owner).Error)
	review := models.Review{
		SitterID: sitter.ID, OwnerID: owner.ID,
		Rating: 5, Comment: "Excelente cuidadora!",
	}
	require.NoError(t, db.Create(&review).Error)

	detail, err := uc.Execute(context.Background(), sitter.ID)
	require.NoError(t, err)

	assert.Equal(t, "Ana Silva", detail.Name)
	assert.Equal(t, "Rua das Flores, 123 - Centro, CUIABA", detail.Address)
	require.Len(t, detail.ReviewList, 1)
	assert.Equal(t, "Pedro Souza", detail.ReviewList[0].OwnerName)
	assert.InDelta(t, 5.0, detail.ReviewList[0].Rating, 0.001)
}

func TestGetCaregiverNotFound(t *testing.T) {
	db := testutils.NewTestDB(t)
	uc := ucDirectory.NewGetCaregiver(infraRepo.NewDirectoryGormRepository(db))

	_, err := uc.Execute(context.Background(), "nao-existe")
	assert.True(t, httperr.IsBusiness(err, "sitter_not_found"))
}
