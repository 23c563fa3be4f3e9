package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/petcaremt/petcare-api/internal/audit"
	"github.com/petcaremt/petcare-api/internal/config"
	"github.com/petcaremt/petcare-api/internal/httperr"
	"github.com/petcaremt/petcare-api/internal/models"
	"github.com/petcaremt/petcare-api/internal/validators"
)

const bcryptCost = 12

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: dispatcher, logger: logger}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	UserType string `json:"userType" binding:"required"`

	// Campos de cuidador
	Bio        string   `json:"bio"`
	Experience string   `json:"experience"`
	HourlyRate *float64 `json:"hourlyRate"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados obrigatórios não fornecidos")
		return
	}

	userType := models.UserType(strings.ToUpper(strings.TrimSpace(req.UserType)))
	if !userType.IsValid() {
		httperr.BadRequest(c, "Tipo de usuário inválido")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "O domínio do e-mail informado não parece ser válido")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Usuário já existe com este email")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		httperr.Internal(c)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		UserType:     userType,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		// Endereço placeholder; o usuário completa depois no perfil.
		address := &models.Address{
			Street:       "Endereço não informado",
			Number:       "0",
			Neighborhood: "Não informado",
			City:         models.CityCuiaba,
			ZipCode:      "78000-000",
		}

		switch userType {
		case models.UserTypeOwner:
			owner := models.Owner{
				UserID:  &user.ID,
				Name:    req.Name,
				Email:   email,
				Phone:   req.Phone,
				Address: address,
			}
			return tx.Create(&owner).Error

		case models.UserTypeSitter:
			sitter := models.Sitter{
				UserID:     &user.ID,
				Name:       req.Name,
				Email:      email,
				Phone:      req.Phone,
				Bio:        req.Bio,
				Experience: req.Experience,
				HourlyRate: req.HourlyRate,
				IsActive:   true,
				Address:    address,
			}
			return tx.Create(&sitter).Error
		}
		return nil
	})
	if err != nil {
		h.logger.Error("failed to register user", zap.Error(err))
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	token, err := h.generateToken(&user)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário criado com sucesso",
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"userType": user.UserType,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados obrigatórios não fornecidos")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "Credenciais inválidas")
			return
		}
		h.logger.Error("failed to load user", zap.Error(err))
		httperr.Internal(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Credenciais inválidas")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"userType": user.UserType,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"userType": string(user.UserType),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
