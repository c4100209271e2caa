package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// cleanupSchedule fires once a day at midnight.
const cleanupSchedule = "0 0 0 * * *"

// CleanupJob manages the scheduled sweep of stale orders. Orders untouched
// for longer than the retention window are forced into the terminal status
// and tombstoned.
type CleanupJob struct {
	handler commands.CleanupStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCleanupJob creates a job that runs the stale-order sweep daily.
func NewCleanupJob(handler commands.CleanupStaleOrdersCommandHandler, logger *slog.Logger) *CleanupJob {
	return &CleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cleanup_job"),
	}
}

// Start schedules the sweep to run daily at midnight.
func (j *CleanupJob) Start() error {
	_, err := j.cron.AddFunc(cleanupSchedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cleanup job started (running daily at midnight)")
	return nil
}

// Run executes one sweep immediately. Exposed so operators can trigger a
// sweep outside the schedule.
func (j *CleanupJob) Run() {
	ctx := context.Background()
	j.logger.InfoContext(ctx, "Cleanup sweep started")

	cmd := commands.NewCleanupStaleOrdersCommand()
	cleared, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cleanup job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Orders cleared", "count", cleared)
}

// Stop stops the cleanup job.
func (j *CleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cleanup job stopped")
}
