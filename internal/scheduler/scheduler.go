// Package scheduler runs periodic housekeeping of the admin console
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/examdesk/admin-console/internal/catalog"
	"github.com/examdesk/admin-console/internal/models"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// NotificationExpirer drops expired notifications
type NotificationExpirer interface {
	Expire() int
}

// ConfirmationExpirer drops expired delete confirmations
type ConfirmationExpirer interface {
	ExpireConfirmations() int
}

// CatalogReloader reloads the catalog snapshot
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// SessionInfo describes the stored administrator session
type SessionInfo interface {
	Info() models.SessionInfo
}

// Config holds the cron expressions of the scheduled jobs
type Config struct {
	HousekeepingCron string
	// CatalogRefreshCron disables background catalog reloads when empty
	CatalogRefreshCron string
	RefreshTimeout     time.Duration
}

// Scheduler manages the periodic jobs
type Scheduler struct {
	cron           *cron.Cron
	notifications  NotificationExpirer
	confirmations  ConfirmationExpirer
	catalog        CatalogReloader
	session        SessionInfo
	refreshTimeout time.Duration
	logger         *zap.Logger
}

// New creates a scheduler and registers its jobs
func New(
	cfg Config,
	notifications NotificationExpirer,
	confirmations ConfirmationExpirer,
	reloader CatalogReloader,
	session SessionInfo,
	logger *zap.Logger,
) (*Scheduler, error) {
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger))
	s := &Scheduler{
		cron:           cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.Recover(cronLogger))),
		notifications:  notifications,
		confirmations:  confirmations,
		catalog:        reloader,
		session:        session,
		refreshTimeout: cfg.RefreshTimeout,
		logger:         logger,
	}
	if s.refreshTimeout <= 0 {
		s.refreshTimeout = time.Minute
	}

	if _, err := s.cron.AddFunc(cfg.HousekeepingCron, s.Housekeep); err != nil {
		return nil, fmt.Errorf("invalid housekeeping cron expression '%s': %w", cfg.HousekeepingCron, err)
	}

	if cfg.CatalogRefreshCron != "" {
		refresh := cron.NewChain(cron.SkipIfStillRunning(cronLogger)).Then(cron.FuncJob(func() {
			s.RefreshCatalog(context.Background())
		}))
		if _, err := s.cron.AddJob(cfg.CatalogRefreshCron, refresh); err != nil {
			return nil, fmt.Errorf("invalid catalog refresh cron expression '%s': %w", cfg.CatalogRefreshCron, err)
		}
	}

	return s, nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.logger.Info("Scheduler started", zap.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// Housekeep drops expired notifications and delete confirmations
func (s *Scheduler) Housekeep() {
	notifications := s.notifications.Expire()
	confirmations := s.confirmations.ExpireConfirmations()
	if notifications > 0 || confirmations > 0 {
		s.logger.Debug("expired transient state",
			zap.Int("notifications", notifications),
			zap.Int("confirmations", confirmations),
		)
	}
}

// RefreshCatalog reloads the catalog when a session is active
func (s *Scheduler) RefreshCatalog(ctx context.Context) {
	if !s.session.Info().Authenticated {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.refreshTimeout)
	defer cancel()

	if err := s.catalog.Reload(ctx); err != nil && !errors.Is(err, catalog.ErrReloadSuperseded) {
		s.logger.Warn("background catalog refresh failed", zap.Error(err))
	}
}
