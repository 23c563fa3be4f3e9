package handlers

import (
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"

	"github.com/petcaremt/petcare-api/internal/httperr"
	"github.com/petcaremt/petcare-api/internal/httpresp"
	ucDirectory "github.com/petcaremt/petcare-api/internal/usecase/directory"
)

type SitterHandler struct {
	listUC   *ucDirectory.ListCaregivers
	detailUC *ucDirectory.GetCaregiver
	logger   *zap.Logger
}

func NewSitterHandler(
	listUC *ucDirectory.ListCaregivers,
	detailUC *ucDirectory.GetCaregiver,
	logger *zap.Logger,
) *SitterHandler {
	return &SitterHandler{
		listUC:   listUC,
		detailUC: detailUC,
		logger:   logger,
	}
}

// GET /api/sitters?serviceType=&location=
func (h *SitterHandler) List(c *gin.Context) {
	serviceType := c.Query("serviceType")
	location := c.Query("location")

	caregivers, err := h.listUC.Execute(c.Request.Context(), serviceType, location)
	if err != nil {
		h.logger.Error("failed to list caregivers", zap.Error(err))
		httperr.Internal(c)
		return
	}

	httpresp.OK(c, gin.H{"caregivers": caregivers})
}

// GET /api/sitters/:id
func (h *SitterHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	caregiver, err := h.detailUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "sitter_not_found") {
			httperr.NotFound(c, "Cuidador não encontrado")
			return
		}
		h.logger.Error("failed to get caregiver", zap.String("id", id), zap.Error(err))
		httperr.Internal(c)
		return
	}

	httpresp.OK(c, gin.H{"caregiver": caregiver})
}
