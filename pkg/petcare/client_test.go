package petcare

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaregivers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sitters", r.URL.Path)
		assert.Equal(t, "passeio", r.URL.Query().Get("serviceType"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"caregivers":[{"id":"abc","name":"Ana Silva","rating":4.8}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	out, err := client.Caregivers(context.Background(), CaregiversFilter{ServiceType: "passeio"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ana Silva", out[0].Name)
}

func TestCaregiversFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Erro interno do servidor"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	out, err := client.Caregivers(context.Background(), CaregiversFilter{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Erro interno do servidor", apiErr.Message)

	// A tela nunca fica vazia: o dataset embutido acompanha o erro.
	require.Len(t, out, 5)
	assert.Equal(t, "Ana Silva", out[0].Name)
}

func TestCaregiversFallbackOnTransportError(t *testing.T) {
	// Porta fechada: falha de transporte, não resposta HTTP.
	client := NewClient("http://127.0.0.1:1", nil)

	out, err := client.Caregivers(context.Background(), CaregiversFilter{})
	require.Error(t, err)
	assert.Len(t, out, 5)
}

func TestCaregiverDetailFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Cuidador não encontrado"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	detail, err := client.Caregiver(context.Background(), "2")
	require.Error(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Carlos Santos", detail.Name)

	// Id fora do dataset ainda rende um detalhe renderizável.
	detail, err = client.Caregiver(context.Background(), "zzz")
	require.Error(t, err)
	require.NotNil(t, detail)
	assert.NotEmpty(t, detail.Name)
}

func TestCreateReservationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Cuidador não encontrado"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	_, err := client.CreateReservation(context.Background(), BookingRequest{SitterID: "nao-existe"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Cuidador não encontrado", apiErr.Message)
}

func TestFallbackCaregiversIsACopy(t *testing.T) {
	a := FallbackCaregivers()
	a[0].Name = "mutado"

	b := FallbackCaregivers()
	assert.Equal(t, "Ana Silva", b[0].Name)
}
