package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/itzlabs/clientdesk/internal/audit"
	"github.com/itzlabs/clientdesk/internal/config"
	"github.com/itzlabs/clientdesk/internal/handlers"
	infraRepo "github.com/itzlabs/clientdesk/internal/infra/repository"
	"github.com/itzlabs/clientdesk/internal/mail"
	"github.com/itzlabs/clientdesk/internal/middleware"
	"github.com/itzlabs/clientdesk/internal/reconcile"
	"github.com/itzlabs/clientdesk/internal/resettoken"
	"github.com/itzlabs/clientdesk/internal/storage"
	ucCall "github.com/itzlabs/clientdesk/internal/usecase/call"
	ucClient "github.com/itzlabs/clientdesk/internal/usecase/client"
	"github.com/itzlabs/clientdesk/internal/usecase/importer"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *slog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	callRepo := infraRepo.NewCallGormRepository(db)
	agentDir := infraRepo.NewAgentGormDirectory(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	reconciler := reconcile.New(agentDir)
	mailer := mail.NewSMTPMailer(cfg)
	tokens := resettoken.New(rdb)
	photos := storage.NewS3PhotoStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createClientUC := ucClient.NewCreateClient(clientRepo, auditDispatcher)
	updateClientUC := ucClient.NewUpdateClient(clientRepo, auditDispatcher)
	deleteClientUC := ucClient.NewDeleteClient(clientRepo, auditDispatcher)
	listClientsUC := ucClient.NewListClients(clientRepo)
	aggregateUC := ucClient.NewAggregateClients(clientRepo)
	exportUC := ucClient.NewExportClients(clientRepo)

	recordCallUC := ucCall.NewRecordCall(callRepo, clientRepo, agentDir, auditDispatcher)
	callHistoryUC := ucCall.NewCallHistory(callRepo)

	importUC := importer.New(clientRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tokens, mailer, log)
	clientHandler := handlers.NewClientHandler(
		createClientUC,
		updateClientUC,
		deleteClientUC,
		listClientsUC,
		aggregateUC,
		reconciler,
		log,
	)
	callHandler := handlers.NewCallHandler(recordCallUC, callHistoryUC, log)
	importExportHandler := handlers.NewImportExportHandler(importUC, exportUC, log)
	agentHandler := handlers.NewAgentHandler(agentDir, log)
	mailHandler := handlers.NewMailHandler(clientRepo, mailer, cfg, log)
	photoHandler := handlers.NewPhotoHandler(clientRepo, photos, log)
	publicHandler := handlers.NewPublicHandler(createClientUC, mailer, cfg, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/public/bookings", publicHandler.CreateBooking)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/setup", authHandler.Setup)
		api.POST("/auth/reset/request", authHandler.ResetRequest)
		api.POST("/auth/reset/confirm", authHandler.ResetConfirm)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/agents", agentHandler.List)

			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/stats", clientHandler.Stats)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.POST("/clients/:id/calls", callHandler.Record)
			secured.GET("/clients/:id/calls", callHandler.History)

			secured.POST("/clients/:id/mail", mailHandler.SendToClient)
			secured.POST("/clients/:id/photo", photoHandler.Upload)

			secured.POST("/import", importExportHandler.Import)
			secured.GET("/export", importExportHandler.Export)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
