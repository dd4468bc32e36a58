// Package http assembles the gin engine: middleware, API routes and the
// static uploads mount.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userapp "helpdesk/internal/application/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/services"
	"helpdesk/internal/infrastructure/storage"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/config"
	db "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
}

// NewRouter wires repositories, use cases and handlers onto a gin engine.
// Everything API lives under /api; attachment bytes are served from /uploads.
func NewRouter(database *gorm.DB, serverCfg *config.ServerConfig, storageCfg *config.StorageConfig) (*Router, error) {
	if serverCfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.NewLogger()

	uploadStore, err := storage.NewUploadStore(storageCfg.UploadDir)
	if err != nil {
		return nil, err
	}

	ticketRepo := repository.NewTicketRepository(database)
	annotationRepo := repository.NewAnnotationRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	userRepo := repository.NewUserRepository(database)

	numberGen := services.NewTicketNumberGenerator(database)
	txManager := db.NewTransactionManager(database)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, numberGen, txManager, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, uploadStore, log),
		ticketusecases.NewGetStatisticsUseCase(ticketRepo, log),
		ticketusecases.NewAddAnnotationUseCase(ticketRepo, annotationRepo, txManager, log),
		ticketusecases.NewListAnnotationsUseCase(ticketRepo, annotationRepo, log),
		ticketusecases.NewDeleteAnnotationUseCase(ticketRepo, annotationRepo, txManager, log),
		ticketusecases.NewUploadAttachmentUseCase(ticketRepo, attachmentRepo, annotationRepo, uploadStore, txManager, log),
		ticketusecases.NewGetAttachmentUseCase(ticketRepo, uploadStore, log),
	)

	userService := userapp.NewService(userRepo, auth.NewSHA256Hasher(), log)
	userHandler := userhandlers.NewUserHandler(userService)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(serverCfg.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.Static("/uploads", uploadStore.Dir())

	api := engine.Group("/api")
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{TicketHandler: ticketHandler})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{UserHandler: userHandler})

	return &Router{engine: engine}, nil
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
