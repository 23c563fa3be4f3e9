package petcare

import (
	"context"
	"errors"
	"sync/atomic"
)

// BookingStep identifica a etapa atual do formulário de reserva.
type BookingStep int

const (
	StepPetInfo BookingStep = iota + 1
	StepServiceDetails
	StepOwnerInfo
)

var (
	// ErrSubmissionInFlight indica que já existe um envio em andamento.
	ErrSubmissionInFlight = errors.New("já existe um envio em andamento")

	errPetInfoIncomplete     = errors.New("nome e tipo do pet são obrigatórios")
	errServiceInfoIncomplete = errors.New("tipo de serviço e data de início são obrigatórios")
	errOwnerInfoIncomplete   = errors.New("nome, email e telefone do tutor são obrigatórios")
	errNotOnFinalStep        = errors.New("o formulário ainda não está na etapa final")
)

// BookingForm é o formulário de reserva em três etapas, na mesma ordem
// da tela de agendamento: dados do pet, detalhes do serviço e dados do
// tutor. Next só avança com a etapa atual válida; Submit só envia uma
// requisição por vez.
type BookingForm struct {
	SitterID string

	PetName string
	PetType string
	PetAge  *int

	ServiceType         string
	StartDate           string
	EndDate             string
	Duration            *int
	SpecialRequirements string

	OwnerName        string
	OwnerEmail       string
	OwnerPhone       string
	EmergencyContact string

	step     BookingStep
	inFlight atomic.Bool
}

func NewBookingForm(sitterID string) *BookingForm {
	return &BookingForm{
		SitterID: sitterID,
		step:     StepPetInfo,
	}
}

func (f *BookingForm) Step() BookingStep {
	return f.step
}

// Next valida a etapa atual e avança para a próxima.
func (f *BookingForm) Next() error {
	switch f.step {
	case StepPetInfo:
		if f.PetName == "" || f.PetType == "" {
			return errPetInfoIncomplete
		}
		f.step = StepServiceDetails
	case StepServiceDetails:
		if f.ServiceType == "" || f.StartDate == "" {
			return errServiceInfoIncomplete
		}
		f.step = StepOwnerInfo
	case StepOwnerInfo:
		// Última etapa: o próximo passo é Submit.
	}
	return nil
}

// Back retorna à etapa anterior sem descartar o que foi preenchido.
func (f *BookingForm) Back() {
	if f.step > StepPetInfo {
		f.step--
	}
}

// Request monta o payload de criação a partir do estado do formulário.
func (f *BookingForm) Request() BookingRequest {
	return BookingRequest{
		OwnerName:  f.OwnerName,
		OwnerEmail: f.OwnerEmail,
		OwnerPhone: f.OwnerPhone,

		PetName: f.PetName,
		PetType: f.PetType,
		PetAge:  f.PetAge,

		ServiceType: f.ServiceType,

		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Duration:  f.Duration,

		SpecialRequirements: f.SpecialRequirements,
		EmergencyContact:    f.EmergencyContact,

		SitterID: f.SitterID,
	}
}

// Submit envia a reserva. Um segundo Submit concorrente retorna
// ErrSubmissionInFlight sem disparar outra requisição; depois que o
// primeiro termina (com sucesso ou erro) um novo envio é permitido.
func (f *BookingForm) Submit(ctx context.Context, client *Client) (*Reservation, error) {
	if f.step != StepOwnerInfo {
		return nil, errNotOnFinalStep
	}
	if f.OwnerName == "" || f.OwnerEmail == "" || f.OwnerPhone == "" {
		return nil, errOwnerInfoIncomplete
	}

	if !f.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer f.inFlight.Store(false)

	return client.CreateReservation(ctx, f.Request())
}
