package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/audit"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/billing"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/cache"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/config"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/handlers"
	infraRepo "github.com/BruksfildServices01/foodtruck-storefront/internal/infra/repository"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/middleware"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/storage"
	ucSchedule "github.com/BruksfildServices01/foodtruck-storefront/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	storeCache := cache.New(cfg)
	uploader := storage.NewS3Uploader(cfg)

	mpClient, err := billing.New(cfg)
	if err != nil {
		log.Fatalf("failed to init billing: %v", err)
	}

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	storefrontStatusUC := ucSchedule.NewStorefrontStatus(scheduleRepo)

	replaceWeekUC := ucSchedule.NewReplaceWeek(
		scheduleRepo,
		auditDispatcher,
	)

	closeTodayUC := ucSchedule.NewCloseToday(
		scheduleRepo,
		auditDispatcher,
	)

	reopenTodayUC := ucSchedule.NewReopenToday(
		scheduleRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	truckHandler := handlers.NewFoodTruckHandler(db, storeCache)

	menuItemHandler := handlers.NewMenuItemHandler(db, storeCache)

	scheduleHandler := handlers.NewScheduleHandler(
		db,
		storeCache,
		scheduleRepo,
		replaceWeekUC,
		closeTodayUC,
		reopenTodayUC,
		storefrontStatusUC,
	)

	mediaHandler := handlers.NewMediaHandler(db, uploader)
	billingHandler := handlers.NewBillingHandler(db, mpClient)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, storeCache, storefrontStatusUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (vitrine)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.Storefront)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.GET("/:slug/menu", publicHandler.ListMenu)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 💳 WEBHOOK DE ASSINATURA
		// ------------------------------
		api.POST("/billing/webhook", billingHandler.Webhook)

		// ------------------------------
		// 🔐 API PRIVADA (painel do dono)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/truck", truckHandler.GetMeTruck)
			secured.PATCH("/me/truck", truckHandler.UpdateMeTruck)
			secured.POST("/me/truck/logo", mediaHandler.UploadLogo)

			secured.GET("/me/menu-items", menuItemHandler.List)
			secured.POST("/me/menu-items", menuItemHandler.Create)
			secured.PATCH("/me/menu-items/:id", menuItemHandler.Update)
			secured.POST("/me/menu-items/:id/photo", mediaHandler.UploadMenuItemPhoto)

			// ------------------------------
			// AGENDA SEMANAL
			// ------------------------------
			secured.GET("/me/schedule", scheduleHandler.Get)
			secured.PUT("/me/schedule", scheduleHandler.Update)
			secured.GET("/me/schedule/status", scheduleHandler.Status)
			secured.POST("/me/schedule/close-today", scheduleHandler.CloseToday)
			secured.POST("/me/schedule/reopen-today", scheduleHandler.ReopenToday)

			secured.POST("/me/subscription/checkout", billingHandler.CreateCheckout)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
