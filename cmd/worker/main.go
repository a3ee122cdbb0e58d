// The worker runs the escalation sweep on its own schedule, separate from
// the HTTP server process.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Belkouche/jarvis-sub000/internal/application/escalation"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/config"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/database"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/email"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/orange"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/repository"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/scheduler"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting escalation worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	gdb := database.Get()
	complaintRepo := repository.NewComplaintRepository(gdb)
	reminderLog := repository.NewReminderLogRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)

	var provider escalation.TicketProvider = unconfiguredProvider{}
	if cfg.Orange.Configured() {
		provider = orange.NewClient(cfg.Orange.BaseURL, cfg.Orange.APIKey, cfg.Orange.Timeout(), log)
	} else {
		log.Warnw("ticketing provider not configured, escalations will use local placeholder ids")
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
		log, metrics.NewMemorySink(),
	)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Errorw("failed to create scheduler", "error", err)
		os.Exit(1)
	}
	if err := manager.RegisterEscalationJob(sweeper, cfg.Escalation.Interval()); err != nil {
		log.Errorw("failed to register escalation job", "error", err)
		os.Exit(1)
	}

	manager.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	if err := manager.Stop(); err != nil {
		log.Errorw("scheduler shutdown error", "error", err)
	}

	log.Infow("escalation worker stopped")
}

// unconfiguredProvider forces the local-placeholder path when no ticketing
// provider is configured.
type unconfiguredProvider struct{}

func (unconfiguredProvider) CreateTicket(context.Context, escalation.ProviderTicket) (string, error) {
	return "", fmt.Errorf("ticketing provider not configured")
}
