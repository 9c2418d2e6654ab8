package jobs

import (
	"context"
	"log/slog"
	"time"

	"coffeeshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report every thirty seconds.
const DefaultReportSchedule = "*/30 * * * * *"

const reportTimeout = 5 * time.Second

// ActiveOrdersReport is the result of one report run.
type ActiveOrdersReport struct {
	Count int
	IDs   []int
}

// ActiveOrdersReportJob periodically logs the orders that are not paid yet.
type ActiveOrdersReportJob struct {
	handler  queries.GetActiveOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewActiveOrdersReportJob(
	handler queries.GetActiveOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) (*ActiveOrdersReportJob, error) {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	if _, err := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	).Parse(schedule); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ActiveOrdersReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "active_orders_report_job"),
	}, nil
}

// Start schedules the report.
func (j *ActiveOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Active orders report failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Active orders report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *ActiveOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Active orders report job stopped")
}

// RunOnce builds and logs one report.
func (j *ActiveOrdersReportJob) RunOnce(ctx context.Context) (ActiveOrdersReport, error) {
	orders, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		return ActiveOrdersReport{}, err
	}

	report := ActiveOrdersReport{Count: len(orders), IDs: make([]int, 0, len(orders))}
	for _, o := range orders {
		report.IDs = append(report.IDs, o.ID)
	}

	j.logger.InfoContext(ctx, "Active orders", "count", report.Count, "ids", report.IDs)
	return report, nil
}
