package handlers

import (
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"

	"github.com/petcaremt/petcare-api/internal/httperr"
	"github.com/petcaremt/petcare-api/internal/httpresp"
	"github.com/petcaremt/petcare-api/internal/middleware"
	ucReservation "github.com/petcaremt/petcare-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC  *ucReservation.CreateReservation
	listUC    *ucReservation.ListReservations
	confirmUC *ucReservation.ConfirmReservation
	cancelUC  *ucReservation.CancelReservation
	logger    *zap.Logger
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	listUC *ucReservation.ListReservations,
	confirmUC *ucReservation.ConfirmReservation,
	cancelUC *ucReservation.CancelReservation,
	logger *zap.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:  createUC,
		listUC:    listUC,
		confirmUC: confirmUC,
		cancelUC:  cancelUC,
		logger:    logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	OwnerName  string `json:"ownerName" binding:"required"`
	OwnerEmail string `json:"ownerEmail" binding:"required,email"`
	OwnerPhone string `json:"ownerPhone" binding:"required"`

	PetName string `json:"petName" binding:"required"`
	PetType string `json:"petType" binding:"required"`
	PetAge  *int   `json:"petAge"`

	ServiceType string `json:"serviceType" binding:"required"`

	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate"`
	Duration  *int   `json:"duration"`

	SpecialRequirements string `json:"specialRequirements"`
	EmergencyContact    string `json:"emergencyContact"`

	SitterID string `json:"sitterId" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

// POST /api/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados obrigatórios não fornecidos")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		OwnerName:           req.OwnerName,
		OwnerEmail:          req.OwnerEmail,
		OwnerPhone:          req.OwnerPhone,
		PetName:             req.PetName,
		PetType:             req.PetType,
		PetAge:              req.PetAge,
		ServiceType:         req.ServiceType,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Duration:            req.Duration,
		SpecialRequirements: req.SpecialRequirements,
		EmergencyContact:    req.EmergencyContact,
		SitterID:            req.SitterID,
	})
	if err != nil {
		h.mapCreateError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"reservation": res,
		"message":     "Reserva criada com sucesso! Você receberá um email de confirmação em breve.",
	})
}

func (h *ReservationHandler) mapCreateError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_required_fields"):
		httperr.BadRequest(c, "Dados obrigatórios não fornecidos")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "Data inválida")
	case httperr.IsBusiness(err, "sitter_not_found"):
		httperr.NotFound(c, "Cuidador não encontrado")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "Serviço não encontrado")
	default:
		h.logger.Error("failed to create reservation", zap.Error(err))
		httperr.Internal(c)
	}
}

// ======================================================
// LIST
// ======================================================

// GET /api/reservations?ownerEmail=&sitterId=
func (h *ReservationHandler) List(c *gin.Context) {
	ownerEmail := c.Query("ownerEmail")
	sitterID := c.Query("sitterId")

	reservations, err := h.listUC.Execute(c.Request.Context(), ownerEmail, sitterID)
	if err != nil {
		h.logger.Error("failed to list reservations", zap.Error(err))
		httperr.Internal(c)
		return
	}

	httpresp.OK(c, gin.H{"reservations": reservations})
}

// ======================================================
// CONFIRM / CANCEL (cuidador logado)
// ======================================================

// PATCH /api/reservations/:id/confirm
func (h *ReservationHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	res, err := h.confirmUC.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.mapStatusError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"reservation": res})
}

// PATCH /api/reservations/:id/cancel
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	res, err := h.cancelUC.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.mapStatusError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"reservation": res})
}

func (h *ReservationHandler) mapStatusError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "sitter_profile_not_found"):
		httperr.NotFound(c, "Perfil de cuidador não encontrado")
	case httperr.IsBusiness(err, "reservation_not_found"):
		httperr.NotFound(c, "Reserva não encontrada")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "Status atual não permite esta operação")
	default:
		h.logger.Error("failed to update reservation status", zap.Error(err))
		httperr.Internal(c)
	}
}
