package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/luxepet-health/clinic-api/internal/audit"
	"github.com/luxepet-health/clinic-api/internal/config"
	"github.com/luxepet-health/clinic-api/internal/handlers"
	infraRepo "github.com/luxepet-health/clinic-api/internal/infra/repository"
	"github.com/luxepet-health/clinic-api/internal/middleware"
	"github.com/luxepet-health/clinic-api/internal/notify"
	ucAppointment "github.com/luxepet-health/clinic-api/internal/usecase/appointment"
	ucCareplan "github.com/luxepet-health/clinic-api/internal/usecase/careplan"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	careplanRepo := infraRepo.NewCarePlanGormRepository(db)

	mailer := notify.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.MailFrom,
	)
	notifyDispatcher := notify.NewDispatcher(mailer, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — CITAS
	// ======================================================
	bookUC := ucAppointment.NewBook(appointmentRepo, notifyDispatcher, auditDispatcher)
	editUC := ucAppointment.NewEdit(appointmentRepo, notifyDispatcher, auditDispatcher)
	cancelUC := ucAppointment.NewCancel(appointmentRepo, notifyDispatcher, auditDispatcher)
	beginAttentionUC := ucAppointment.NewBeginAttention(appointmentRepo)
	editStatusUC := ucAppointment.NewEditStatus(appointmentRepo, notifyDispatcher, auditDispatcher)
	addVisitUC := ucAppointment.NewAddVisit(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	citaQueries := ucAppointment.NewQueries(appointmentRepo)

	// ======================================================
	// USE CASES — PLANES DE CUIDADO
	// ======================================================
	createPlanUC := ucCareplan.NewCreatePlanWithVisits(careplanRepo, auditDispatcher)
	updatePlanUC := ucCareplan.NewUpdatePlanWithVisits(careplanRepo, auditDispatcher)
	planQueries := ucCareplan.NewQueries(careplanRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	petHandler := handlers.NewPetHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		editUC,
		cancelUC,
		beginAttentionUC,
		editStatusUC,
		addVisitUC,
		availabilityUC,
		citaQueries,
	)

	careplanHandler := handlers.NewCarePlanHandler(
		createPlanUC,
		updatePlanUC,
		planQueries,
	)

	// ======================================================
	// AUTH
	// ======================================================
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CITAS
		// ------------------------------
		citas := api.Group("/citas")
		{
			citas.POST("/agendar", appointmentHandler.Book)
			citas.GET("/disponibilidad", appointmentHandler.Availability)
			citas.GET("/por-fecha", appointmentHandler.ListByDate)
			citas.GET("/estado/:estado", appointmentHandler.ListByStatus)
			citas.GET("/email/:email", appointmentHandler.ListByEmail)
			citas.GET("/todas", appointmentHandler.ListAll)
			citas.POST("/agregar-visita", appointmentHandler.AddVisit)
			citas.PUT("/editar/:id", appointmentHandler.Edit)
			citas.PUT("/iniciar-atencion/:id", appointmentHandler.BeginAttention)
			citas.PUT("/editar-estado/:id", appointmentHandler.EditStatus)
			citas.DELETE("/eliminar/:id", appointmentHandler.Cancel)
			citas.GET("/:id", appointmentHandler.GetByID)
		}

		// ------------------------------
		// PLANES DE CUIDADO
		// ------------------------------
		planes := api.Group("/planes")
		{
			planes.POST("/crear-plan-con-citas", careplanHandler.CreateWithVisits)
			planes.GET("/plan-por-mascota/:idMascota", careplanHandler.GetByPet)
			planes.GET("/planes-por-correo", careplanHandler.ListByEmail)
			planes.PUT("/actualizar-plan-con-citas/:idMascota", careplanHandler.UpdateWithVisits)
		}

		// ------------------------------
		// MASCOTAS (mutaciones protegidas)
		// ------------------------------
		mascotas := api.Group("/mascotas")
		{
			mascotas.GET("", petHandler.List)
			mascotas.GET("/buscar", petHandler.Search)
			mascotas.GET("/:id", petHandler.GetByID)

			secured := mascotas.Group("")
			secured.Use(middleware.AuthMiddleware(cfg))
			{
				secured.POST("", petHandler.Create)
				secured.PUT("/:id", petHandler.Update)
				secured.DELETE("/:id", petHandler.Delete)
			}
		}
	}
}
