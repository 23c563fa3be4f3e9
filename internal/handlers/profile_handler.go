package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/petcaremt/petcare-api/internal/audit"
	"github.com/petcaremt/petcare-api/internal/httperr"
	"github.com/petcaremt/petcare-api/internal/httpresp"
	"github.com/petcaremt/petcare-api/internal/middleware"
	"github.com/petcaremt/petcare-api/internal/models"
)

type ProfileHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewProfileHandler(db *gorm.DB, dispatcher *audit.Dispatcher, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{db: db, audit: dispatcher, logger: logger}
}

// --------- Requests ---------

// O endereço trafega estruturado nos dois sentidos; a string formatada
// existe só para exibição e nunca é re-parseada.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`

	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`

	Bio        string   `json:"bio"`
	Experience string   `json:"experience"`
	HourlyRate *float64 `json:"hourlyRate"`

	Avatar string `json:"avatar"`
}

// --------- Handlers ---------

// GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	user, err := h.loadUser(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Usuário não encontrado")
			return
		}
		h.logger.Error("failed to load profile", zap.Error(err))
		httperr.Internal(c)
		return
	}

	httpresp.OK(c, gin.H{"profile": buildProfile(user)})
}

// POST /api/profile/update
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nome, email, telefone e endereço completo são obrigatórios")
		return
	}

	city := models.City(strings.ToUpper(strings.TrimSpace(req.City)))
	if !city.IsValid() {
		httperr.BadRequest(c, "Cidade não atendida")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Este email já está sendo usado por outro usuário")
		return
	}

	user, err := h.loadUser(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Usuário não encontrado")
			return
		}
		h.logger.Error("failed to load profile", zap.Error(err))
		httperr.Internal(c)
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		user.Name = req.Name
		user.Email = email
		if req.Avatar != "" {
			user.Avatar = req.Avatar
		}
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		switch {
		case user.UserType == models.UserTypeSitter && user.Sitter != nil:
			s := user.Sitter
			s.Name = req.Name
			s.Email = email
			s.Phone = req.Phone
			s.Bio = req.Bio
			s.Experience = req.Experience
			s.HourlyRate = req.HourlyRate
			if req.Avatar != "" {
				s.Avatar = req.Avatar
			}
			if err := tx.Omit("Address", "Specialties", "Services", "Reviews").Save(s).Error; err != nil {
				return err
			}
			return upsertAddress(tx, s.Address, &req, city, nil, &s.ID)

		case user.UserType == models.UserTypeOwner && user.Owner != nil:
			o := user.Owner
			o.Name = req.Name
			o.Email = email
			o.Phone = req.Phone
			if err := tx.Omit("Address", "Pets").Save(o).Error; err != nil {
				return err
			}
			return upsertAddress(tx, o.Address, &req, city, &o.ID, nil)
		}
		return nil
	})
	if err != nil {
		h.logger.Error("failed to update profile", zap.Error(err))
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	updated, err := h.loadUser(userID)
	if err != nil {
		h.logger.Error("failed to reload profile", zap.Error(err))
		httperr.Internal(c)
		return
	}

	httpresp.OK(c, gin.H{"profile": buildProfile(updated)})
}

// --------- Helpers ---------

func (h *ProfileHandler) loadUser(userID string) (*models.User, error) {
	var user models.User
	err := h.db.
		Preload("Owner").
		Preload("Owner.Address").
		Preload("Sitter").
		Preload("Sitter.Address").
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// upsertAddress atualiza o endereço do perfil ou cria um novo, sempre
// chaveado pelo dono (owner_id/sitter_id), nunca pela tupla rua+número+cidade.
func upsertAddress(
	tx *gorm.DB,
	current *models.Address,
	req *UpdateProfileRequest,
	city models.City,
	ownerID *string,
	sitterID *string,
) error {

	if current == nil {
		current = &models.Address{
			OwnerID:  ownerID,
			SitterID: sitterID,
		}
	}

	current.Street = req.Street
	current.Number = req.Number
	current.Complement = req.Complement
	current.Neighborhood = req.Neighborhood
	current.City = city
	current.ZipCode = req.ZipCode

	return tx.Save(current).Error
}

func buildProfile(user *models.User) gin.H {
	profile := gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"image":      user.Avatar,
		"userType":   user.UserType,
		"phone":      "",
		"address":    "",
		"bio":        "",
		"experience": "",
		"hourlyRate": nil,
	}

	var address *models.Address

	switch {
	case user.UserType == models.UserTypeSitter && user.Sitter != nil:
		profile["phone"] = user.Sitter.Phone
		profile["bio"] = user.Sitter.Bio
		profile["experience"] = user.Sitter.Experience
		profile["hourlyRate"] = user.Sitter.HourlyRate
		address = user.Sitter.Address

	case user.UserType == models.UserTypeOwner && user.Owner != nil:
		profile["phone"] = user.Owner.Phone
		address = user.Owner.Address
	}

	if address != nil {
		profile["address"] = address.Display()
		profile["addressDetails"] = gin.H{
			"street":       address.Street,
			"number":       address.Number,
			"complement":   address.Complement,
			"neighborhood": address.Neighborhood,
			"city":         address.City,
			"zipCode":      address.ZipCode,
		}
	}

	return profile
}
