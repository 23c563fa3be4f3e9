package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/petcaremt/petcare-api/internal/models"
	"github.com/petcaremt/petcare-api/internal/testutils"
)

func TestRegisterValidation(t *testing.T) {
	_, router, _ := setupAPI(t)

	t.Run("tipo de usuário desconhecido", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/register", map[string]any{
			"name":     "João Silva",
			"email":    "joao@gmail.com",
			"password": "segredo123",
			"phone":    "(65) 98888-0000",
			"userType": "ADMIN",
		}, nil)

		require.Equal(t, http.StatusBadRequest, resp.Code)

		var body struct {
			Error string `json:"error"`
		}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, "Tipo de usuário inválido", body.Error)
	})

	t.Run("payload incompleto", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/register", map[string]any{
			"name": "João Silva",
		}, nil)

		require.Equal(t, http.StatusBadRequest, resp.Code)

		var body struct {
			Error string `json:"error"`
		}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, "Dados obrigatórios não fornecidos", body.Error)
	})

	t.Run("senha curta demais", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/register", map[string]any{
			"name":     "João Silva",
			"email":    "joao@gmail.com",
			"password": "123",
			"phone":    "(65) 98888-0000",
			"userType": "OWNER",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestLogin(t *testing.T) {
	db, router, _ := setupAPI(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Name: "Ana Silva", Email: "ana@email.com",
		PasswordHash: string(hash), UserType: models.UserTypeSitter,
	}
	require.NoError(t, db.Create(&user).Error)

	t.Run("credenciais corretas", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    "ana@email.com",
			"password": "segredo123",
		}, nil)

		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var body struct {
			Token string `json:"token"`
			User  struct {
				Email    string `json:"email"`
				UserType string `json:"userType"`
			} `json:"user"`
		}
		testutils.ParseResponse(t, resp, &body)

		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "ana@email.com", body.User.Email)
		assert.Equal(t, "SITTER", body.User.UserType)
	})

	t.Run("email com caixa diferente", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    "ANA@email.com",
			"password": "segredo123",
		}, nil)
		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("senha errada", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    "ana@email.com",
			"password": "outra-senha",
		}, nil)

		require.Equal(t, http.StatusUnauthorized, resp.Code)

		var body struct {
			Error string `json:"error"`
		}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, "Credenciais inválidas", body.Error)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    "ninguem@email.com",
			"password": "segredo123",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}
