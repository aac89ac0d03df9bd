package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically logs the order count per status. It reads
// through the status counts query and never writes.
type OrderReportJob struct {
	handler queries.GetOrderStatusCountsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReportJob creates a job that reports order counts once a minute.
func NewOrderReportJob(
	handler queries.GetOrderStatusCountsQueryHandler,
	logger *slog.Logger,
) *OrderReportJob {
	return &OrderReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_report_job"),
	}
}

// Start begins the report job on its minute schedule.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderStatusCountsQuery()

		counts, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", handleErr)
			return
		}

		attrs := make([]any, 0, len(counts)*2)
		for _, count := range counts {
			attrs = append(attrs, count.Status.String(), count.Count)
		}
		j.logger.InfoContext(ctx, "Order status report", attrs...)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
