package jobs

import (
	"context"
	"log/slog"

	"pathlab/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob cancels draft orders whose order date has passed.
// Runs once a day at midnight local time.
type OrderExpiryJob struct {
	handler commands.CancelExpiredOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpiryJob creates a new job for expiring stale draft orders.
func NewOrderExpiryJob(handler commands.CancelExpiredOrdersCommandHandler, logger *slog.Logger) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_expiry_job"),
	}
}

// Start schedules the expiry job to run daily at midnight.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelExpiredOrdersCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed to build command", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Expired draft orders cancelled", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running daily at midnight)")
	return nil
}

// Stop stops the order expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
