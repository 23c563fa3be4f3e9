package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/petcaremt/petcare-api/internal/config"
	"github.com/petcaremt/petcare-api/internal/models"
	"github.com/petcaremt/petcare-api/internal/routes"
	"github.com/petcaremt/petcare-api/internal/testutils"
)

func setupAPI(t *testing.T) (*gorm.DB, *gin.Engine, *config.Config) {
	t.Helper()

	db := testutils.NewTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "0"}

	router := testutils.SetupTestRouter(t)
	routes.RegisterRoutes(router, db, cfg, testutils.TestLogger(t))

	return db, router, cfg
}

func signToken(t *testing.T, cfg *config.Config, userID string, userType models.UserType) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID,
		"userType": string(userType),
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestListSittersEndpoint(t *testing.T) {
	db, router, _ := setupAPI(t)

	day := 80.0
	require.NoError(t, db.Create(&models.Sitter{
		Name: "Ana Silva", Email: "ana@email.com", Rating: 4.8,
		DayRate: &day, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.Sitter{
		Name: "Desativada", Email: "off@email.com", IsActive: false,
	}).Error)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/api/sitters", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Success    bool `json:"success"`
		Caregivers []struct {
			Name  string `json:"name"`
			Price string `json:"price"`
		} `json:"caregivers"`
	}
	testutils.ParseResponse(t, resp, &body)

	assert.True(t, body.Success)
	require.Len(t, body.Caregivers, 1)
	assert.Equal(t, "Ana Silva", body.Caregivers[0].Name)
	assert.Equal(t, "R$ 80.00/dia", body.Caregivers[0].Price)
}

func TestSitterDetailEndpoint(t *testing.T) {
	db, router, _ := setupAPI(t)

	sitter := models.Sitter{
		Name: "Ana Silva", Email: "ana@email.com", IsActive: true,
	}
	require.NoError(t, db.Create(&sitter).Error)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/api/sitters/"+sitter.ID, nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Success   bool `json:"success"`
		Caregiver struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Address string `json:"address"`
		} `json:"caregiver"`
	}
	testutils.ParseResponse(t, resp, &body)

	assert.True(t, body.Success)
	assert.Equal(t, sitter.ID, body.Caregiver.ID)
	// Cuidador sem endereço cadastrado ainda tem detalhe renderizável.
	assert.Equal(t, "Endereço não informado", body.Caregiver.Address)
}

func TestSitterDetailNotFound(t *testing.T) {
	_, router, _ := setupAPI(t)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/api/sitters/nao-existe", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	var body struct {
		Error string `json:"error"`
	}
	testutils.ParseResponse(t, resp, &body)
	assert.Equal(t, "Cuidador não encontrado", body.Error)
}
