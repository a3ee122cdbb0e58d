// Package http assembles the HTTP surface: dependency wiring, routes and
// the server lifecycle.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appcomplaint "github.com/Belkouche/jarvis-sub000/internal/application/complaint"
	complaintusecases "github.com/Belkouche/jarvis-sub000/internal/application/complaint/usecases"
	appcontract "github.com/Belkouche/jarvis-sub000/internal/application/contract"
	appmessage "github.com/Belkouche/jarvis-sub000/internal/application/message"
	appnlu "github.com/Belkouche/jarvis-sub000/internal/application/nlu"
	appresponse "github.com/Belkouche/jarvis-sub000/internal/application/response"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/cache"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/config"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/crm"
	infranlu "github.com/Belkouche/jarvis-sub000/internal/infrastructure/nlu"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/repository"
	complainthandlers "github.com/Belkouche/jarvis-sub000/internal/interfaces/http/handlers/complaint"
	templatehandlers "github.com/Belkouche/jarvis-sub000/internal/interfaces/http/handlers/template"
	tickethandlers "github.com/Belkouche/jarvis-sub000/internal/interfaces/http/handlers/ticket"
	webhookhandlers "github.com/Belkouche/jarvis-sub000/internal/interfaces/http/handlers/webhook"
	"github.com/Belkouche/jarvis-sub000/internal/interfaces/http/routes"
	"github.com/Belkouche/jarvis-sub000/internal/shared/db"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

// Server owns the gin engine and the underlying http.Server.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     logger.Interface
}

// NewServer wires repositories, external clients, use cases and handlers
// onto a gin engine.
func NewServer(
	cfg *config.Config,
	gdb *gorm.DB,
	redisClient *redis.Client,
	log logger.Interface,
	sink metrics.Sink,
) *Server {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidations()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))

	// Repositories
	txMgr := db.NewTransactionManager(gdb)
	complaintRepo := repository.NewComplaintRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)
	outcomeRepo := repository.NewOutcomeRepository(gdb)
	templateRepo := repository.NewTemplateRepository(gdb)

	// Pipeline stages
	extractor := appnlu.NewExtractor(infranlu.NewClient(&cfg.NLU), cfg.NLU.Timeout(), log, sink)
	resolver := appcontract.NewResolver(
		crm.NewClient(&cfg.CRM),
		cache.NewContractStatusCache(redisClient),
		appcontract.Options{
			MaxAttempts:    cfg.CRM.MaxAttempts,
			BackoffBase:    cfg.CRM.BackoffBase(),
			AttemptTimeout: cfg.CRM.AttemptTimeout(),
			OverallTimeout: cfg.CRM.OverallTimeout(),
			CacheTTL:       cfg.CRM.CacheTTL(),
		},
		log, sink,
	)
	renderer := appresponse.NewTemplater(templateRepo, log)
	detector := appcomplaint.NewDetector()

	processUC := appmessage.NewProcessMessageUseCase(
		extractor, resolver, renderer, detector,
		complaintRepo, outcomeRepo, log, sink,
	)

	// Complaint management use cases
	createUC := complaintusecases.NewCreateComplaintUseCase(complaintRepo, log, sink)
	assignUC := complaintusecases.NewAssignComplaintUseCase(complaintRepo, log)
	resolveUC := complaintusecases.NewResolveComplaintUseCase(complaintRepo, txMgr, log)
	addNoteUC := complaintusecases.NewAddNoteUseCase(complaintRepo, log)
	getUC := complaintusecases.NewGetComplaintUseCase(complaintRepo, log)
	listUC := complaintusecases.NewListComplaintsUseCase(complaintRepo, log)

	// Handlers and routes
	routes.SetupWebhookRoutes(engine, &routes.WebhookRouteConfig{
		WebhookHandler: webhookhandlers.NewWebhookHandler(processUC, outcomeRepo, log),
	})
	routes.SetupComplaintRoutes(engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: complainthandlers.NewComplaintHandler(
			createUC, assignUC, resolveUC, addNoteUC, getUC, listUC, log),
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler: tickethandlers.NewTicketHandler(ticketRepo, log),
	})
	routes.SetupTemplateRoutes(engine, &routes.TemplateRouteConfig{
		TemplateHandler: templatehandlers.NewTemplateHandler(templateRepo, log),
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.Server.GetAddr(),
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 75 * time.Second,
		},
		logger: log,
	}
}

// Engine exposes the gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infow("http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Infow("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
