package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob periodically checks for orders whose expected delivery
// date has passed without the order reaching a terminal status, and logs a
// warning so operators can follow up.
type OverdueOrdersJob struct {
	handler queries.CountOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrdersJob creates a job that scans for overdue orders once a minute.
func NewOverdueOrdersJob(handler queries.CountOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the overdue-orders scan.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewCountOverdueOrdersQuery(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders job failed to build query", "error", err)
			return
		}

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.WarnContext(ctx, "Orders past their expected delivery date", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every minute)")
	return nil
}

// Stop stops the overdue-orders scan.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
