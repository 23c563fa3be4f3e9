package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/petcaremt/petcare-api/internal/audit"
	"github.com/petcaremt/petcare-api/internal/config"
	"github.com/petcaremt/petcare-api/internal/handlers"
	infraRepo "github.com/petcaremt/petcare-api/internal/infra/repository"
	"github.com/petcaremt/petcare-api/internal/middleware"
	ucDirectory "github.com/petcaremt/petcare-api/internal/usecase/directory"
	ucReservation "github.com/petcaremt/petcare-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	directoryRepo := infraRepo.NewDirectoryGormRepository(db)
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	listCaregiversUC := ucDirectory.NewListCaregivers(directoryRepo)
	getCaregiverUC := ucDirectory.NewGetCaregiver(directoryRepo)

	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)
	listReservationsUC := ucReservation.NewListReservations(reservationRepo)
	confirmReservationUC := ucReservation.NewConfirmReservation(
		reservationRepo,
		auditDispatcher,
	)
	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	sitterHandler := handlers.NewSitterHandler(listCaregiversUC, getCaregiverUC, logger)
	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listReservationsUC,
		confirmReservationUC,
		cancelReservationUC,
		logger,
	)
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher, logger)
	profileHandler := handlers.NewProfileHandler(db, auditDispatcher, logger)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.GET("/sitters", sitterHandler.List)
		api.GET("/sitters/:id", sitterHandler.Detail)

		api.POST("/reservations", reservationHandler.Create)
		api.GET("/reservations", reservationHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/profile", profileHandler.Get)
			secured.POST("/profile/update", profileHandler.Update)

			secured.PATCH("/reservations/:id/confirm", reservationHandler.Confirm)
			secured.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)
		}
	}
}
