package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lanavaja/barber-platform/internal/assistant"
	"github.com/lanavaja/barber-platform/internal/audit"
	"github.com/lanavaja/barber-platform/internal/cache"
	"github.com/lanavaja/barber-platform/internal/config"
	"github.com/lanavaja/barber-platform/internal/handlers"
	infraRepo "github.com/lanavaja/barber-platform/internal/infra/repository"
	"github.com/lanavaja/barber-platform/internal/middleware"
	"github.com/lanavaja/barber-platform/internal/notify"
	"github.com/lanavaja/barber-platform/internal/payments"
	"github.com/lanavaja/barber-platform/internal/settings"
	"github.com/lanavaja/barber-platform/internal/storage"
	ucAppointment "github.com/lanavaja/barber-platform/internal/usecase/appointment"
	ucInvoice "github.com/lanavaja/barber-platform/internal/usecase/invoice"
)

type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Settings *settings.Service
	Log      *zap.Logger
	Loc      *time.Location
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	invoiceRepo := infraRepo.NewInvoiceGormRepository(d.DB)

	slotCache := cache.NewSlotCache(d.Redis, d.Log)
	store := storage.New(cfg)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Log)

	notifier := notify.FromConfig(cfg, d.Log)

	var links *payments.LinkProvider
	if cfg.MercadoPagoAccessToken != "" {
		lp, err := payments.NewLinkProvider(cfg.MercadoPagoAccessToken)
		if err != nil {
			d.Log.Warn("payment links disabled", zap.Error(err))
		} else {
			links = lp
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	invoiceService := ucInvoice.NewService(invoiceRepo, d.Settings, nil)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		slotCache,
		auditDispatcher,
		d.Loc,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		slotCache,
		auditDispatcher,
		d.Loc,
		nil,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		invoiceService,
		auditDispatcher,
		d.Log,
		d.Loc,
		nil,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		slotCache,
		auditDispatcher,
		d.Loc,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, d.Loc)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, slotCache)

	var aiAssistant *assistant.Assistant
	if cfg.GeminiAPIKey != "" {
		ops := assistant.NewDefaultOps(d.DB, availabilityUC, createAppointmentUC, d.Loc)
		a, err := assistant.New(cfg.GeminiAPIKey, ops)
		if err != nil {
			d.Log.Warn("assistant disabled", zap.Error(err))
		} else {
			aiAssistant = a
		}
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, cfg)
	meHandler := handlers.NewMeHandler(d.DB)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		updateAppointmentUC,
		listAppointmentsUC,
		availabilityUC,
		d.Loc,
	)

	barberHandler := handlers.NewBarberHandler(d.DB, d.Loc)
	serviceHandler := handlers.NewServiceHandler(d.DB)
	reviewHandler := handlers.NewReviewHandler(d.DB)

	feedHandler := handlers.NewFeedHandler(d.DB, store, d.Log)
	messageHandler := handlers.NewMessageHandler(d.DB, notifier, d.Log)
	galleryHandler := handlers.NewGalleryHandler(d.DB, store, d.Log)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceRepo, links, d.Log)
	accountingHandler := handlers.NewAccountingHandler(d.DB, invoiceService, d.Loc, d.Log)

	settingsHandler := handlers.NewSettingsHandler(d.Settings)
	assistantHandler := handlers.NewAssistantHandler(aiAssistant, d.Log)
	calendarHandler := handlers.NewCalendarHandler(listAppointmentsUC, d.Loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id/reviews", reviewHandler.ListForBarber)
		api.GET("/slots", appointmentHandler.Slots)
		api.GET("/gallery", galleryHandler.List)
		api.GET("/settings", settingsHandler.Get)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/device", meHandler.RegisterDevice)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id", appointmentHandler.Patch)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/calendar.ics", calendarHandler.Export)

			// ------------------------------
			// REVIEWS / FEED / MESSAGES
			// ------------------------------
			secured.POST("/reviews", reviewHandler.Create)

			secured.GET("/feed", feedHandler.ListPosts)
			secured.POST("/feed", feedHandler.CreatePost)
			secured.DELETE("/feed/:id", feedHandler.DeletePost)
			secured.POST("/feed/:id/comments", feedHandler.CreateComment)
			secured.POST("/feed/:id/like", feedHandler.ToggleLike)

			secured.GET("/messages", messageHandler.Inbox)
			secured.GET("/messages/:id", messageHandler.Conversation)
			secured.POST("/messages", messageHandler.Send)

			secured.POST("/assistant/chat", assistantHandler.Chat)

			// ------------------------------
			// BARBER AGENDA
			// ------------------------------
			agenda := secured.Group("/agenda")
			agenda.Use(middleware.RequireRole(middleware.RoleBarber, middleware.RoleAdmin))
			{
				agenda.GET("/appointments", appointmentHandler.ListByDate)
				agenda.GET("/appointments/month", appointmentHandler.ListByMonth)

				agenda.GET("/availability", barberHandler.GetAvailability)
				agenda.PUT("/availability", barberHandler.PutAvailability)

				agenda.GET("/days-off", barberHandler.ListDaysOff)
				agenda.POST("/days-off", barberHandler.CreateDayOff)
				agenda.DELETE("/days-off/:id", barberHandler.DeleteDayOff)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.POST("/gallery", galleryHandler.Upload)
				admin.DELETE("/gallery/:id", galleryHandler.Delete)

				admin.GET("/invoices", invoiceHandler.List)
				admin.GET("/invoices/:id", invoiceHandler.Get)
				admin.PATCH("/invoices/:id/paid", invoiceHandler.MarkPaid)
				admin.POST("/invoices/:id/payment-link", invoiceHandler.PaymentLink)

				admin.POST("/barber-payments", accountingHandler.CreateBarberPayment)
				admin.GET("/barber-payments", accountingHandler.ListBarberPayments)
				admin.POST("/manual-payments", accountingHandler.CreateManualPayment)
				admin.GET("/manual-payments", accountingHandler.ListManualPayments)
				admin.POST("/expenses", accountingHandler.CreateExpense)
				admin.GET("/expenses", accountingHandler.ListExpenses)
				admin.DELETE("/expenses/:id", accountingHandler.DeleteExpense)
				admin.GET("/accounting/summary", accountingHandler.Summary)

				admin.PATCH("/settings", settingsHandler.Update)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
