package jobs

import (
	"context"
	"log/slog"
	"time"

	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// MsgOrderOverdue is sent to a customer whose order has missed its estimate.
const MsgOrderOverdue = "Your order is overdue. Please contact the service."

// OverdueScanJob periodically finds unsettled orders whose estimate date has
// passed and notifies their owners.
type OverdueScanJob struct {
	handler  queries.ListOverdueOrdersQueryHandler
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueScanJob creates the hourly overdue order scan.
func NewOverdueScanJob(
	handler queries.ListOverdueOrdersQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *OverdueScanJob {
	return &OverdueScanJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(),
		logger:   logger.With("component", "overdue_scan_job"),
	}
}

// Start schedules the scan to run at the top of every hour. The first scan
// happens on schedule, not at startup.
func (j *OverdueScanJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.scan)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue scan job started (running hourly)")
	return nil
}

// Stop stops the overdue scan job.
func (j *OverdueScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue scan job stopped")
}

func (j *OverdueScanJob) scan() {
	ctx := context.Background()

	query, err := queries.NewListOverdueOrdersQuery(time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue scan failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue scan failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Overdue scan finished", "overdueOrders", len(overdue))

	for _, item := range overdue {
		if item.ReaderID == nil {
			continue
		}
		j.notifier.Notify(ctx, item.ReaderID.String(), MsgOrderOverdue)
	}
}
