// Package petcare é o cliente HTTP da API consumido pelas telas de busca
// e agendamento. Em falha de rede ou resposta de erro nas consultas do
// diretório, ele devolve um dataset embutido junto com o erro, para a UI
// nunca renderizar uma tela vazia.
package petcare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient cria um cliente para a API. httpClient nil usa um cliente
// padrão com timeout de 10s.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// --------- Wire types ---------

type Prices struct {
	Hourly  *float64 `json:"hourly"`
	Daily   *float64 `json:"daily"`
	Weekly  *float64 `json:"weekly"`
	Monthly *float64 `json:"monthly"`
}

type Caregiver struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	Distance   string   `json:"distance"`
	Price      string   `json:"price"`
	Image      string   `json:"image"`
	Services   []string `json:"services"`
	About      string   `json:"about"`
	Experience string   `json:"experience"`
	Prices     Prices   `json:"prices"`
}

type ReviewEntry struct {
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	OwnerName string    `json:"ownerName"`
	Date      time.Time `json:"date"`
}

type CaregiverDetail struct {
	Caregiver
	Address    string        `json:"address"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	ReviewList []ReviewEntry `json:"reviewList"`
}

type ReservationParty struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ReservationService struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ServiceType string  `json:"serviceType"`
}

type ReservationPet struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Age  *int   `json:"age"`
}

type Reservation struct {
	ID           string             `json:"id"`
	StartDate    time.Time          `json:"startDate"`
	EndDate      time.Time          `json:"endDate"`
	Status       string             `json:"status"`
	TotalPrice   float64            `json:"totalPrice"`
	Observations string             `json:"observations"`
	Owner        ReservationParty   `json:"owner"`
	Sitter       ReservationParty   `json:"sitter"`
	Service      ReservationService `json:"service"`
	Pets         []ReservationPet   `json:"pets"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type BookingRequest struct {
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
	OwnerPhone string `json:"ownerPhone"`

	PetName string `json:"petName"`
	PetType string `json:"petType"`
	PetAge  *int   `json:"petAge,omitempty"`

	ServiceType string `json:"serviceType"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Duration  *int   `json:"duration,omitempty"`

	SpecialRequirements string `json:"specialRequirements,omitempty"`
	EmergencyContact    string `json:"emergencyContact,omitempty"`

	SitterID string `json:"sitterId"`
}

// APIError é uma resposta de erro da API (4xx/5xx).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// --------- Diretório ---------

type CaregiversFilter struct {
	ServiceType string
	Location    string
}

// Caregivers lista os cuidadores do diretório. Em caso de falha devolve
// o dataset embutido E o erro; o chamador decide como sinalizar.
func (c *Client) Caregivers(ctx context.Context, filter CaregiversFilter) ([]Caregiver, error) {
	q := url.Values{}
	if filter.ServiceType != "" {
		q.Set("serviceType", filter.ServiceType)
	}
	if filter.Location != "" {
		q.Set("location", filter.Location)
	}

	endpoint := c.baseURL + "/api/sitters"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var payload struct {
		Caregivers []Caregiver `json:"caregivers"`
	}
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return FallbackCaregivers(), err
	}

	return payload.Caregivers, nil
}

// Caregiver busca o detalhe de um cuidador. Em caso de falha devolve o
// equivalente do dataset embutido junto com o erro.
func (c *Client) Caregiver(ctx context.Context, id string) (*CaregiverDetail, error) {
	var payload struct {
		Caregiver CaregiverDetail `json:"caregiver"`
	}
	if err := c.get(ctx, c.baseURL+"/api/sitters/"+url.PathEscape(id), &payload); err != nil {
		fallback := FallbackCaregiverDetail(id)
		return &fallback, err
	}

	return &payload.Caregiver, nil
}

// --------- Reservas ---------

type ReservationsFilter struct {
	OwnerEmail string
	SitterID   string
}

// CreateReservation envia o pedido de reserva. Sem retry e sem fallback:
// o resultado reflete exatamente a resposta do servidor.
func (c *Client) CreateReservation(ctx context.Context, req BookingRequest) (*Reservation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/reservations",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var payload struct {
		Reservation Reservation `json:"reservation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &payload.Reservation, nil
}

func (c *Client) Reservations(ctx context.Context, filter ReservationsFilter) ([]Reservation, error) {
	q := url.Values{}
	if filter.OwnerEmail != "" {
		q.Set("ownerEmail", filter.OwnerEmail)
	}
	if filter.SitterID != "" {
		q.Set("sitterId", filter.SitterID)
	}

	endpoint := c.baseURL + "/api/reservations"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var payload struct {
		Reservations []Reservation `json:"reservations"`
	}
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return payload.Reservations, nil
}

// --------- Helpers ---------

func (c *Client) get(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
		payload.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: payload.Error}
}
