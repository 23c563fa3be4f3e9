package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcaremt/petcare-api/internal/models"
	"github.com/petcaremt/petcare-api/internal/testutils"
)

func updatePayload() map[string]any {
	return map[string]any{
		"name":         "Ana Silva",
		"email":        "ana@email.com",
		"phone":        "(65) 99999-1111",
		"street":       "Rua das Flores",
		"number":       "123",
		"complement":   "Apto 45",
		"neighborhood": "Centro",
		"city":         "cuiaba",
		"zipCode":      "78005-100",
		"bio":          "Cuidadora experiente",
		"experience":   "5 anos",
		"hourlyRate":   45.0,
	}
}

func TestProfileEndpoints(t *testing.T) {
	db, router, cfg := setupAPI(t)

	user := models.User{
		Name: "Ana Silva", Email: "ana@email.com",
		PasswordHash: "x", UserType: models.UserTypeSitter,
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Sitter{
		UserID: &user.ID, Name: "Ana Silva", Email: "ana@email.com", IsActive: true,
	}).Error)

	headers := map[string]string{
		"Authorization": "Bearer " + signToken(t, cfg, user.ID, models.UserTypeSitter),
	}

	t.Run("perfil exige autenticação", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, http.MethodGet, "/api/profile", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("atualização cria o endereço do cuidador", func(t *testing.T) {
		resp := testutils.MakeRequest(
			t, router, http.MethodPost, "/api/profile/update",
			updatePayload(), headers,
		)
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var body struct {
			Success bool `json:"success"`
			Profile struct {
				Address        string `json:"address"`
				AddressDetails struct {
					Street string `json:"street"`
					City   string `json:"city"`
				} `json:"addressDetails"`
			} `json:"profile"`
		}
		testutils.ParseResponse(t, resp, &body)

		assert.True(t, body.Success)
		assert.Equal(t, "Rua das Flores, 123 - Centro, CUIABA", body.Profile.Address)
		// O endereço também volta estruturado; a string é só exibição.
		assert.Equal(t, "Rua das Flores", body.Profile.AddressDetails.Street)
		assert.Equal(t, "CUIABA", body.Profile.AddressDetails.City)
	})

	t.Run("segunda atualização reaproveita a mesma linha de endereço", func(t *testing.T) {
		payload := updatePayload()
		payload["street"] = "Av. do CPA"
		payload["number"] = "900"

		resp := testutils.MakeRequest(
			t, router, http.MethodPost, "/api/profile/update",
			payload, headers,
		)
		require.Equal(t, http.StatusOK, resp.Code)

		var addresses int64
		require.NoError(t, db.Model(&models.Address{}).Count(&addresses).Error)
		assert.Equal(t, int64(1), addresses)

		var addr models.Address
		require.NoError(t, db.First(&addr).Error)
		assert.Equal(t, "Av. do CPA", addr.Street)
	})

	t.Run("cidade fora da área de cobertura", func(t *testing.T) {
		payload := updatePayload()
		payload["city"] = "Rondonópolis"

		resp := testutils.MakeRequest(
			t, router, http.MethodPost, "/api/profile/update",
			payload, headers,
		)
		require.Equal(t, http.StatusBadRequest, resp.Code)

		var body struct {
			Error string `json:"error"`
		}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, "Cidade não atendida", body.Error)
	})

	t.Run("email de outro usuário é rejeitado", func(t *testing.T) {
		other := models.User{
			Name: "Carlos Santos", Email: "carlos@email.com",
			PasswordHash: "x", UserType: models.UserTypeOwner,
		}
		require.NoError(t, db.Create(&other).Error)

		payload := updatePayload()
		payload["email"] = "carlos@email.com"

		resp := testutils.MakeRequest(
			t, router, http.MethodPost, "/api/profile/update",
			payload, headers,
		)
		require.Equal(t, http.StatusBadRequest, resp.Code)

		var body struct {
			Error string `json:"error"`
		}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, "Este email já está sendo usado por outro usuário", body.Error)
	})

	t.Run("leitura do perfil", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, http.MethodGet, "/api/profile", nil, headers)
		require.Equal(t, http.StatusOK, resp.Code)

		var body struct {
			Profile struct {
				Name     string `json:"name"`
				UserType string `json:"userType"`
				Phone    string `json:"phone"`
			} `json:"profile"`
		}
		testutils.ParseResponse(t, resp, &body)

		assert.Equal(t, "Ana Silva", body.Profile.Name)
		assert.Equal(t, "SITTER", body.Profile.UserType)
		assert.Equal(t, "(65) 99999-1111", body.Profile.Phone)
	})
}
