// Package server implements the `server` CLI command: the HTTP pipeline
// process, optionally with the escalation sweep embedded.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Belkouche/jarvis-sub000/internal/application/escalation"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/config"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/database"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/email"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/orange"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/migrations"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/repository"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/scheduler"
	httpServer "github.com/Belkouche/jarvis-sub000/internal/interfaces/http"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

var (
	env         string
	autoMigrate bool
	withSweeper bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the message pipeline HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&withSweeper, "with-sweeper", false, "Run the escalation sweep inside this process instead of a dedicated worker")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration enabled in production environment")
		}
		if err := migrations.MigrateAll(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	sink := metrics.NewMemorySink()
	srv := httpServer.NewServer(cfg, database.Get(), redisClient, log, sink)

	var schedulerManager *scheduler.SchedulerManager
	if withSweeper {
		schedulerManager, err = setupSweeper(cfg, log, sink)
		if err != nil {
			return fmt.Errorf("failed to set up escalation sweep: %w", err)
		}
		schedulerManager.Start()
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Errorw("http server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down")

	if schedulerManager != nil {
		if err := schedulerManager.Stop(); err != nil {
			log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func setupSweeper(cfg *config.Config, log logger.Interface, sink metrics.Sink) (*scheduler.SchedulerManager, error) {
	gdb := database.Get()
	complaintRepo := repository.NewComplaintRepository(gdb)
	reminderLog := repository.NewReminderLogRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)

	var provider escalation.TicketProvider = unconfiguredProvider{}
	if cfg.Orange.Configured() {
		provider = orange.NewClient(cfg.Orange.BaseURL, cfg.Orange.APIKey, cfg.Orange.Timeout(), log)
	}

	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SupportTeam: cfg.Email.SupportTeam,
	}, log)

	sweeper := escalation.NewSweeper(
		complaintRepo, reminderLog, ticketRepo,
		provider, notifier, orange.LocalTicketID,
		log, sink,
	)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return nil, err
	}
	if err := manager.RegisterEscalationJob(sweeper, cfg.Escalation.Interval()); err != nil {
		return nil, err
	}
	return manager, nil
}

// unconfiguredProvider forces the local-placeholder path when no ticketing
// provider is configured.
type unconfiguredProvider struct{}

func (unconfiguredProvider) CreateTicket(context.Context, escalation.ProviderTicket) (string, error) {
	return "", fmt.Errorf("ticketing provider not configured")
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
